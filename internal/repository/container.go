package repository

import (
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mock github.com/farmart-ke/farmart-backend/internal/repository UserRepo,FarmerRepo,BuyerRepo,AnimalRepo,OrderRepo,WishlistRepo,AuditRepo

type Repos struct {
	User     UserRepo
	Farmer   FarmerRepo
	Buyer    BuyerRepo
	Animal   AnimalRepo
	Order    OrderRepo
	Wishlist WishlistRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Farmer:   NewFarmerRepo(db),
		Buyer:    NewBuyerRepo(db),
		Animal:   NewAnimalRepo(db),
		Order:    NewOrderRepo(db),
		Wishlist: NewWishlistRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Farmer:   r.Farmer.WithTx(tx),
		Buyer:    r.Buyer.WithTx(tx),
		Animal:   r.Animal.WithTx(tx),
		Order:    r.Order.WithTx(tx),
		Wishlist: r.Wishlist.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
