package application

import (
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

type Services struct {
	Audit    *AuditService
	Admin    *AdminService
	User     *UserService
	Animal   *AnimalService
	Order    *OrderService
	Wishlist *WishlistService
	Seed     *SeedService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Audit:    NewAuditService(repos),
		Admin:    NewAdminService(repos),
		User:     NewUserService(repos),
		Animal:   NewAnimalService(repos),
		Order:    NewOrderService(repos),
		Wishlist: NewWishlistService(repos),
		Seed:     NewSeedService(repos),
	}
}
