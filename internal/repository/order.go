package repository

import (
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/domain/order"
)

type OrderRepo interface {
	ListOrdersByBuyerID(buyerID uint) ([]order.Order, error)
	GetOrderForBuyer(id uint, buyerID uint) (order.Order, error)
	CreateOrder(o *order.Order) error
	WithTx(tx *gorm.DB) OrderRepo
}

type DBOrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *DBOrderRepo {
	return &DBOrderRepo{
		db: db,
	}
}

func (r *DBOrderRepo) ListOrdersByBuyerID(buyerID uint) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *DBOrderRepo) GetOrderForBuyer(id uint, buyerID uint) (order.Order, error) {
	var o order.Order
	if err := r.db.Where("id = ? AND buyer_id = ?", id, buyerID).First(&o).Error; err != nil {
		return o, err
	}
	return o, nil
}

func (r *DBOrderRepo) CreateOrder(o *order.Order) error {
	return r.db.Create(o).Error
}

func (r *DBOrderRepo) WithTx(tx *gorm.DB) OrderRepo {
	if tx == nil {
		return r
	}
	return &DBOrderRepo{
		db: tx,
	}
}
