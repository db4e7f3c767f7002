package application

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/wishlist"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var (
	ErrWishlistFieldMissing = errors.New("missing required field: animal_id")
	ErrWishlistItemNotFound = errors.New("wishlist item not found or access denied")
	ErrAlreadyInWishlist    = errors.New("item already in wishlist")
)

type WishlistService struct {
	Repos *repository.Repos
}

func NewWishlistService(repos *repository.Repos) *WishlistService {
	return &WishlistService{
		Repos: repos,
	}
}

func (s *WishlistService) ListMyWishlist(userID uuid.UUID) ([]wishlist.Wishlist, error) {
	return s.Repos.Wishlist.ListWishlistByUserID(userID)
}

// AddToWishlist inserts the item and reports ErrAlreadyInWishlist when the
// animal is saved twice. The animal is loaded afterwards so the response
// can carry its details.
func (s *WishlistService) AddToWishlist(userID uuid.UUID, input wishlist.AddWishlistInput) (wishlist.Wishlist, error) {
	if input.AnimalID == nil {
		return wishlist.Wishlist{}, ErrWishlistFieldMissing
	}

	_, err := s.Repos.Wishlist.GetWishlistItemByAnimal(userID, *input.AnimalID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return wishlist.Wishlist{}, err
	}
	if err == nil {
		return wishlist.Wishlist{}, ErrAlreadyInWishlist
	}

	item := wishlist.Wishlist{
		UserID:   userID,
		AnimalID: *input.AnimalID,
	}
	if err := s.Repos.Wishlist.CreateWishlistItem(&item); err != nil {
		return wishlist.Wishlist{}, err
	}

	if a, err := s.Repos.Animal.GetAnimalByID(item.AnimalID); err == nil {
		item.Animal = &a
	}

	return item, nil
}

func (s *WishlistService) RemoveFromWishlist(userID uuid.UUID, id uint) error {
	item, err := s.Repos.Wishlist.GetWishlistItemForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWishlistItemNotFound
		}
		return err
	}
	return s.Repos.Wishlist.DeleteWishlistItem(item.ID)
}

func (s *WishlistService) CheckInWishlist(userID uuid.UUID, animalID uint) (bool, error) {
	_, err := s.Repos.Wishlist.GetWishlistItemByAnimal(userID, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *WishlistService) CountWishlist(userID uuid.UUID) (int64, error) {
	return s.Repos.Wishlist.CountWishlistByUserID(userID)
}
