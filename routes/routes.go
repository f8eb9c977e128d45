package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/PhzzX0/esports-api/controllers/order"
)

// SetupRoutes is the single entry-point that wires up the public site, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Shared one-time confirmation store for post-checkout views
	confirmations := orderControllers.NewConfirmationStore()

	// Public site pages (no middleware)
	SetupPublicRoutes(r, db)

	// Registration / login
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected): cart + checkout + orders
	SetupUserRoutes(r, db, confirmations)

	// Admin back-office (JWT + admin role)
	SetupAdminRoutes(r, db)
}
