package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/PhzzX0/esports-api/controllers/user"
)

// SetupAuthRoutes registers registration and login (no middleware).
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db))
	}
}
