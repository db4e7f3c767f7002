package repository

import (
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
)

// AnimalFilter narrows the public listing. Zero-value Page and Limit fall
// back to the first page of ten.
type AnimalFilter struct {
	Species  *string
	Status   *string
	FarmerID *uint
	Page     int
	Limit    int
}

type AnimalRepo interface {
	ListAnimals(filter AnimalFilter) ([]animal.Animal, int64, error)
	GetAnimalByID(id uint) (animal.Animal, error)
	SaveAnimal(a *animal.Animal) error
	DeleteAnimal(id uint) error
	WithTx(tx *gorm.DB) AnimalRepo
}

type DBAnimalRepo struct {
	db *gorm.DB
}

func NewAnimalRepo(db *gorm.DB) *DBAnimalRepo {
	return &DBAnimalRepo{
		db: db,
	}
}

func (r *DBAnimalRepo) ListAnimals(filter AnimalFilter) ([]animal.Animal, int64, error) {
	var animals []animal.Animal
	query := r.db.Model(&animal.Animal{})

	if filter.Species != nil {
		query = query.Where("species = ?", *filter.Species)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FarmerID != nil {
		query = query.Where("farmer_id = ?", *filter.FarmerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&animals).Error
	return animals, total, err
}

func (r *DBAnimalRepo) GetAnimalByID(id uint) (animal.Animal, error) {
	var a animal.Animal
	if err := r.db.First(&a, id).Error; err != nil {
		return a, err
	}
	return a, nil
}

func (r *DBAnimalRepo) SaveAnimal(a *animal.Animal) error {
	return r.db.Save(a).Error
}

func (r *DBAnimalRepo) DeleteAnimal(id uint) error {
	return r.db.Delete(&animal.Animal{}, id).Error
}

func (r *DBAnimalRepo) WithTx(tx *gorm.DB) AnimalRepo {
	if tx == nil {
		return r
	}
	return &DBAnimalRepo{
		db: tx,
	}
}
