package application

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var (
	ErrAnimalNotFound       = errors.New("animal not found")
	ErrAnimalAccessDenied   = errors.New("animal not found or access denied")
	ErrFarmerProfileMissing = errors.New("no farmer profile found for this user")
)

type AnimalService struct {
	Repos *repository.Repos
}

func NewAnimalService(repos *repository.Repos) *AnimalService {
	return &AnimalService{
		Repos: repos,
	}
}

func (s *AnimalService) ListAnimals(query animal.ListAnimalsQuery) ([]animal.Animal, int64, error) {
	filter := repository.AnimalFilter{
		Species:  query.Species,
		Status:   query.Status,
		FarmerID: query.FarmerID,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	return s.Repos.Animal.ListAnimals(filter)
}

func (s *AnimalService) GetAnimal(id uint) (animal.Animal, error) {
	a, err := s.Repos.Animal.GetAnimalByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return animal.Animal{}, ErrAnimalNotFound
		}
		return animal.Animal{}, err
	}
	return a, nil
}

// farmerFor resolves the farmer profile behind an authenticated user.
func (s *AnimalService) farmerFor(userID uuid.UUID) (uint, error) {
	profile, err := s.Repos.Farmer.GetFarmerByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrFarmerProfileMissing
		}
		return 0, err
	}
	return profile.ID, nil
}

func (s *AnimalService) CreateAnimal(userID uuid.UUID, input animal.CreateAnimalInput) (animal.Animal, error) {
	farmerID, err := s.farmerFor(userID)
	if err != nil {
		return animal.Animal{}, err
	}

	a := animal.Animal{
		FarmerID: farmerID,
		Species:  input.Species,
		Breed:    input.Breed,
		Age:      input.Age,
		Weight:   input.Weight,
		Price:    input.Price,
		Status:   animal.StatusAvailable,
		ImageURL: input.ImageURL,
	}
	if input.Status != nil {
		a.Status = *input.Status
	}

	if err := s.Repos.Animal.SaveAnimal(&a); err != nil {
		return animal.Animal{}, err
	}
	return a, nil
}

// ownedAnimal fetches an animal only when it belongs to the caller's farm.
// Missing and foreign listings are indistinguishable to the caller.
func (s *AnimalService) ownedAnimal(userID uuid.UUID, id uint) (animal.Animal, error) {
	farmerID, err := s.farmerFor(userID)
	if err != nil {
		return animal.Animal{}, err
	}

	a, err := s.Repos.Animal.GetAnimalByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return animal.Animal{}, ErrAnimalAccessDenied
		}
		return animal.Animal{}, err
	}
	if a.FarmerID != farmerID {
		return animal.Animal{}, ErrAnimalAccessDenied
	}
	return a, nil
}

// GetOwnedAnimal is the ownership-checked read used before mutating calls.
func (s *AnimalService) GetOwnedAnimal(userID uuid.UUID, id uint) (animal.Animal, error) {
	return s.ownedAnimal(userID, id)
}

func (s *AnimalService) UpdateAnimal(userID uuid.UUID, id uint, input animal.UpdateAnimalInput) (animal.Animal, error) {
	a, err := s.ownedAnimal(userID, id)
	if err != nil {
		return animal.Animal{}, err
	}

	if input.Species != nil {
		a.Species = *input.Species
	}
	if input.Breed != nil {
		a.Breed = input.Breed
	}
	if input.Age != nil {
		a.Age = input.Age
	}
	if input.Weight != nil {
		a.Weight = input.Weight
	}
	if input.Price != nil {
		a.Price = *input.Price
	}
	if input.Status != nil {
		a.Status = *input.Status
	}
	if input.ImageURL != nil {
		a.ImageURL = input.ImageURL
	}

	if err := s.Repos.Animal.SaveAnimal(&a); err != nil {
		return animal.Animal{}, err
	}
	return a, nil
}

func (s *AnimalService) DeleteAnimal(userID uuid.UUID, id uint) error {
	a, err := s.ownedAnimal(userID, id)
	if err != nil {
		return err
	}
	return s.Repos.Animal.DeleteAnimal(a.ID)
}

// SetAnimalImage stores the uploaded object URL on an owned listing.
func (s *AnimalService) SetAnimalImage(userID uuid.UUID, id uint, imageURL string) (animal.Animal, error) {
	a, err := s.ownedAnimal(userID, id)
	if err != nil {
		return animal.Animal{}, err
	}

	a.ImageURL = &imageURL
	if err := s.Repos.Animal.SaveAnimal(&a); err != nil {
		return animal.Animal{}, err
	}
	return a, nil
}
