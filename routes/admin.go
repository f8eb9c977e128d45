package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	matchController "github.com/PhzzX0/esports-api/controllers/match"
	newsController "github.com/PhzzX0/esports-api/controllers/news"
	orderControllers "github.com/PhzzX0/esports-api/controllers/order"
	playerController "github.com/PhzzX0/esports-api/controllers/player"
	productController "github.com/PhzzX0/esports-api/controllers/product"
	sponsorController "github.com/PhzzX0/esports-api/controllers/sponsor"
	userControllers "github.com/PhzzX0/esports-api/controllers/user"
	"github.com/PhzzX0/esports-api/middleware"
)

// SetupAdminRoutes registers the “/admin/*” back-office. Requires a valid JWT
// whose user has the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ──────────────── Shop Catalog ────────────────
		adminGroup.POST("/products", productController.CreateProduct(db))
		adminGroup.PUT("/products/:id", productController.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productController.DeleteProduct(db))

		// ──────────────── Roster ────────────────
		adminGroup.POST("/players", playerController.CreatePlayer(db))
		adminGroup.PUT("/players/:id", playerController.UpdatePlayer(db))
		adminGroup.DELETE("/players/:id", playerController.DeletePlayer(db))

		// ──────────────── News ────────────────
		adminGroup.POST("/news", newsController.CreateNews(db))
		adminGroup.PUT("/news/:id", newsController.UpdateNews(db))
		adminGroup.DELETE("/news/:id", newsController.DeleteNews(db))

		// ──────────────── Match Schedule ────────────────
		adminGroup.POST("/matches", matchController.CreateMatch(db))
		adminGroup.PUT("/matches/:id", matchController.UpdateMatch(db))
		adminGroup.DELETE("/matches/:id", matchController.DeleteMatch(db))

		// ──────────────── Sponsors ────────────────
		adminGroup.POST("/sponsors", sponsorController.CreateSponsor(db))
		adminGroup.PUT("/sponsors/:id", sponsorController.UpdateSponsor(db))
		adminGroup.DELETE("/sponsors/:id", sponsorController.DeleteSponsor(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
		adminGroup.DELETE("/orders/:orderID", orderControllers.DeleteOrderHandler(db))

		// ──────────────── Users ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
