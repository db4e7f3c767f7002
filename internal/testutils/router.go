package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/farmart-ke/farmart-backend/internal/api/routes"
)

// SetupRouter builds a test-mode engine with the full route tree. The
// database connection must already be initialized.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}
