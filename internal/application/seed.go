package application

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"

	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
	"github.com/farmart-ke/farmart-backend/internal/domain/buyer"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/domain/user"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

//go:embed seed_fixtures.yaml
var seedFixturesYAML []byte

type seedBuyer struct {
	DeliveryAddress  string `yaml:"delivery_address"`
	PreferredContact string `yaml:"preferred_contact"`
}

type seedFarmer struct {
	FarmName    string `yaml:"farm_name"`
	Location    string `yaml:"location"`
	PhoneNumber string `yaml:"phone_number"`
	IsVerified  bool   `yaml:"is_verified"`
}

type seedUser struct {
	Email       string      `yaml:"email"`
	Password    string      `yaml:"password"`
	Role        string      `yaml:"role"`
	FullName    string      `yaml:"full_name"`
	PhoneNumber string      `yaml:"phone_number"`
	Location    string      `yaml:"location"`
	Buyer       *seedBuyer  `yaml:"buyer"`
	Farmer      *seedFarmer `yaml:"farmer"`
}

type seedAnimal struct {
	FarmerEmail string  `yaml:"farmer_email"`
	Species     string  `yaml:"species"`
	Breed       string  `yaml:"breed"`
	Age         int     `yaml:"age"`
	Weight      float64 `yaml:"weight"`
	Price       float64 `yaml:"price"`
	Status      string  `yaml:"status"`
	ImageURL    string  `yaml:"image_url"`
}

type seedFixtures struct {
	Users   []seedUser   `yaml:"users"`
	Animals []seedAnimal `yaml:"animals"`
}

type SeedService struct {
	Repos *repository.Repos
}

func NewSeedService(repos *repository.Repos) *SeedService {
	return &SeedService{
		Repos: repos,
	}
}

// SeedTestData loads the embedded fixtures into the database in one
// transaction. Running it against a database that already holds the
// fixture users fails on the email unique constraint, so reset first.
func (s *SeedService) SeedTestData() error {
	var fixtures seedFixtures
	if err := yaml.Unmarshal(seedFixturesYAML, &fixtures); err != nil {
		return fmt.Errorf("parse seed fixtures: %w", err)
	}

	fmt.Println("🌱 Seeding test data...")

	err := s.Repos.ExecTx(func(txRepos *repository.Repos) error {
		farmersByEmail := make(map[string]uint)

		for _, su := range fixtures.Users {
			hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.Email, err)
			}

			role := user.RoleBuyer
			if su.Role != "" {
				role = user.Role(strings.ToLower(su.Role))
			}

			u := user.User{
				ID:           uuid.New(),
				Email:        su.Email,
				PasswordHash: string(hashed),
				Role:         role,
				IsActive:     true,
				FullName:     optional(su.FullName),
				PhoneNumber:  optional(su.PhoneNumber),
				Location:     optional(su.Location),
			}
			if err := txRepos.User.SaveUser(&u); err != nil {
				return fmt.Errorf("seed user %s: %w", su.Email, err)
			}

			if su.Farmer != nil {
				profile := farmer.Farmer{
					UserID:      u.ID,
					FarmName:    su.Farmer.FarmName,
					Location:    su.Farmer.Location,
					PhoneNumber: su.Farmer.PhoneNumber,
					IsVerified:  su.Farmer.IsVerified,
				}
				if err := txRepos.Farmer.SaveFarmer(&profile); err != nil {
					return fmt.Errorf("seed farmer profile %s: %w", su.Email, err)
				}
				farmersByEmail[su.Email] = profile.ID
			}

			if su.Buyer != nil {
				profile := buyer.Buyer{
					UserID:           u.ID,
					DeliveryAddress:  optional(su.Buyer.DeliveryAddress),
					PreferredContact: optional(su.Buyer.PreferredContact),
				}
				if err := txRepos.Buyer.SaveBuyer(&profile); err != nil {
					return fmt.Errorf("seed buyer profile %s: %w", su.Email, err)
				}
			}
		}

		for _, sa := range fixtures.Animals {
			farmerID, ok := farmersByEmail[sa.FarmerEmail]
			if !ok {
				return fmt.Errorf("seed animal %s: no seeded farmer %s", sa.Species, sa.FarmerEmail)
			}

			a := animal.Animal{
				FarmerID: farmerID,
				Species:  sa.Species,
				Breed:    optional(sa.Breed),
				Age:      optionalInt(sa.Age),
				Weight:   optionalFloat(sa.Weight),
				Price:    sa.Price,
				Status:   animal.StatusAvailable,
				ImageURL: optional(sa.ImageURL),
			}
			if sa.Status != "" {
				a.Status = sa.Status
			}
			if err := txRepos.Animal.SaveAnimal(&a); err != nil {
				return fmt.Errorf("seed animal %s: %w", sa.Species, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Seeded %d test animals\n", len(fixtures.Animals))
	for _, su := range fixtures.Users {
		fmt.Printf("✅ Test user: %s (%s)\n", su.Email, strings.ToLower(su.Role))
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}

func optionalFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}
