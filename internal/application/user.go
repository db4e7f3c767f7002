package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/api/middleware"
	"github.com/farmart-ke/farmart-backend/internal/domain/buyer"
	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
	"github.com/farmart-ke/farmart-backend/internal/domain/user"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var (
	ErrMissingFields        = errors.New("missing email, password, or role")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmailTaken           = errors.New("email already registered")
	ErrFarmerFieldsRequired = errors.New("farmers require farm_name, location, and phone_number")
	ErrPhoneTaken           = errors.New("phone number already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordHashFailure  = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Register creates the user plus its role profile in one transaction so a
// half-registered account can never be left behind.
func (s *UserService) Register(input user.RegisterInput) (user.User, error) {
	if input.Email == nil || input.Password == nil || input.Role == nil {
		return user.User{}, ErrMissingFields
	}

	role := strings.ToLower(*input.Role)
	if role != "farmer" && role != "buyer" {
		return user.User{}, ErrInvalidRole
	}

	_, err := s.Repos.User.GetUserByEmail(*input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	if role == "farmer" {
		if emptyPtr(input.FarmName) || emptyPtr(input.Location) || emptyPtr(input.PhoneNumber) {
			return user.User{}, ErrFarmerFieldsRequired
		}

		_, err := s.Repos.Farmer.GetFarmerByPhoneNumber(*input.PhoneNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, err
		}
		if err == nil {
			return user.User{}, ErrPhoneTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	newUser := user.User{
		ID:           uuid.New(),
		Email:        *input.Email,
		PasswordHash: string(hashed),
		Role:         user.Role(role),
		IsActive:     true,
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		Location:     input.Location,
	}

	err = s.Repos.ExecTx(func(txRepos *repository.Repos) error {
		if err := txRepos.User.SaveUser(&newUser); err != nil {
			return err
		}

		if role == "farmer" {
			profile := farmer.Farmer{
				UserID:      newUser.ID,
				FarmName:    *input.FarmName,
				Location:    *input.Location,
				PhoneNumber: *input.PhoneNumber,
			}
			return txRepos.Farmer.SaveFarmer(&profile)
		}

		profile := buyer.Buyer{
			UserID:           newUser.ID,
			DeliveryAddress:  input.DeliveryAddress,
			PreferredContact: input.PreferredContact,
		}
		return txRepos.Buyer.SaveBuyer(&profile)
	})
	if err != nil {
		return user.User{}, err
	}

	return newUser, nil
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID.String(), string(usr.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) GetCurrentUser(id uuid.UUID) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func emptyPtr(s *string) bool {
	return s == nil || *s == ""
}
