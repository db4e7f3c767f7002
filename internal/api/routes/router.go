package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/farmart-ke/farmart-backend/internal/api/handlers"
	"github.com/farmart-ke/farmart-backend/internal/api/middleware"
	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/config/db"
	"github.com/farmart-ke/farmart-backend/internal/cron"
	"github.com/farmart-ke/farmart-backend/internal/domain/user"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, repos, r)
	authMiddleware := middleware.NewAuth()

	// Start background tasks
	cron.StartCleanupTask(services.Audit)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.GET("/health", h.Auth.Health)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.Me)
	}

	animals := api.Group("/animals")
	{
		animals.GET("", h.Animal.ListAnimals)
		animals.GET("/:id", h.Animal.GetAnimal)

		farmerOnly := animals.Group("")
		farmerOnly.Use(middleware.JWTAuthMiddleware(), authMiddleware.Role(string(user.RoleFarmer)))
		{
			farmerOnly.POST("", h.Animal.CreateAnimal)
			farmerOnly.PUT("/:id", h.Animal.UpdateAnimal)
			farmerOnly.DELETE("/:id", h.Animal.DeleteAnimal)
			farmerOnly.POST("/:id/image", h.Animal.UploadImage)
		}
	}

	orders := api.Group("/orders")
	orders.Use(middleware.JWTAuthMiddleware())
	{
		orders.GET("", h.Order.ListMyOrders)
		orders.POST("", h.Order.CreateOrder)
		orders.GET("/stats", h.Order.GetOrderStats)
		orders.GET("/:id", h.Order.GetOrder)
	}

	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.JWTAuthMiddleware())
	{
		wishlist.GET("", h.Wishlist.ListMyWishlist)
		wishlist.POST("", h.Wishlist.AddToWishlist)
		wishlist.GET("/count", h.Wishlist.CountWishlist)
		wishlist.GET("/check/:animal_id", h.Wishlist.CheckInWishlist)
		wishlist.DELETE("/:id", h.Wishlist.RemoveFromWishlist)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), authMiddleware.Admin())
	{
		admin.GET("/audit", h.Admin.GetAuditLogs)
		admin.PUT("/farmers/:id/verify", h.Admin.VerifyFarmer)
	}
}
