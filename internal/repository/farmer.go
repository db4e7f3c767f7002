package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
)

type FarmerRepo interface {
	GetFarmerByID(id uint) (farmer.Farmer, error)
	GetFarmerByUserID(userID uuid.UUID) (farmer.Farmer, error)
	GetFarmerByPhoneNumber(phoneNumber string) (farmer.Farmer, error)
	SaveFarmer(f *farmer.Farmer) error
	WithTx(tx *gorm.DB) FarmerRepo
}

type DBFarmerRepo struct {
	db *gorm.DB
}

func NewFarmerRepo(db *gorm.DB) *DBFarmerRepo {
	return &DBFarmerRepo{
		db: db,
	}
}

func (r *DBFarmerRepo) GetFarmerByID(id uint) (farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFarmerRepo) GetFarmerByUserID(userID uuid.UUID) (farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.Where("user_id = ?", userID).First(&f).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFarmerRepo) GetFarmerByPhoneNumber(phoneNumber string) (farmer.Farmer, error) {
	var f farmer.Farmer
	if err := r.db.Where("phone_number = ?", phoneNumber).First(&f).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFarmerRepo) SaveFarmer(f *farmer.Farmer) error {
	return r.db.Save(f).Error
}

func (r *DBFarmerRepo) WithTx(tx *gorm.DB) FarmerRepo {
	if tx == nil {
		return r
	}
	return &DBFarmerRepo{
		db: tx,
	}
}
