package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

type Handlers struct {
	Auth     *AuthHandler
	Animal   *AnimalHandler
	Order    *OrderHandler
	Wishlist *WishlistHandler
	Admin    *AdminHandler
	Router   *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		Auth:     NewAuthHandler(svc.User, repos),
		Animal:   NewAnimalHandler(svc.Animal, repos),
		Order:    NewOrderHandler(svc.Order, repos),
		Wishlist: NewWishlistHandler(svc.Wishlist),
		Admin:    NewAdminHandler(svc.Audit, svc.Admin, repos),
		Router:   router,
	}
	return h
}
