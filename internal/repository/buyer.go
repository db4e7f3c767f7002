package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/buyer"
)

type BuyerRepo interface {
	GetBuyerByUserID(userID uuid.UUID) (buyer.Buyer, error)
	SaveBuyer(b *buyer.Buyer) error
	WithTx(tx *gorm.DB) BuyerRepo
}

type DBBuyerRepo struct {
	db *gorm.DB
}

func NewBuyerRepo(db *gorm.DB) *DBBuyerRepo {
	return &DBBuyerRepo{
		db: db,
	}
}

func (r *DBBuyerRepo) GetBuyerByUserID(userID uuid.UUID) (buyer.Buyer, error) {
	var b buyer.Buyer
	if err := r.db.Where("user_id = ?", userID).First(&b).Error; err != nil {
		return b, err
	}
	return b, nil
}

func (r *DBBuyerRepo) SaveBuyer(b *buyer.Buyer) error {
	return r.db.Save(b).Error
}

func (r *DBBuyerRepo) WithTx(tx *gorm.DB) BuyerRepo {
	if tx == nil {
		return r
	}
	return &DBBuyerRepo{
		db: tx,
	}
}
