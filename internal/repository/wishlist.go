package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/wishlist"
)

type WishlistRepo interface {
	ListWishlistByUserID(userID uuid.UUID) ([]wishlist.Wishlist, error)
	GetWishlistItemByAnimal(userID uuid.UUID, animalID uint) (wishlist.Wishlist, error)
	GetWishlistItemForUser(id uint, userID uuid.UUID) (wishlist.Wishlist, error)
	CreateWishlistItem(w *wishlist.Wishlist) error
	DeleteWishlistItem(id uint) error
	CountWishlistByUserID(userID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) WishlistRepo
}

type DBWishlistRepo struct {
	db *gorm.DB
}

func NewWishlistRepo(db *gorm.DB) *DBWishlistRepo {
	return &DBWishlistRepo{
		db: db,
	}
}

func (r *DBWishlistRepo) ListWishlistByUserID(userID uuid.UUID) ([]wishlist.Wishlist, error) {
	var items []wishlist.Wishlist
	err := r.db.Preload("Animal").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *DBWishlistRepo) GetWishlistItemByAnimal(userID uuid.UUID, animalID uint) (wishlist.Wishlist, error) {
	var w wishlist.Wishlist
	if err := r.db.Where("user_id = ? AND animal_id = ?", userID, animalID).First(&w).Error; err != nil {
		return w, err
	}
	return w, nil
}

func (r *DBWishlistRepo) GetWishlistItemForUser(id uint, userID uuid.UUID) (wishlist.Wishlist, error) {
	var w wishlist.Wishlist
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&w).Error; err != nil {
		return w, err
	}
	return w, nil
}

func (r *DBWishlistRepo) CreateWishlistItem(w *wishlist.Wishlist) error {
	return r.db.Create(w).Error
}

func (r *DBWishlistRepo) DeleteWishlistItem(id uint) error {
	return r.db.Delete(&wishlist.Wishlist{}, id).Error
}

func (r *DBWishlistRepo) CountWishlistByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&wishlist.Wishlist{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *DBWishlistRepo) WithTx(tx *gorm.DB) WishlistRepo {
	if tx == nil {
		return r
	}
	return &DBWishlistRepo{
		db: tx,
	}
}
