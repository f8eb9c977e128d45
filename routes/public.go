package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	matchController "github.com/PhzzX0/esports-api/controllers/match"
	newsController "github.com/PhzzX0/esports-api/controllers/news"
	playerController "github.com/PhzzX0/esports-api/controllers/player"
	productController "github.com/PhzzX0/esports-api/controllers/product"
	siteController "github.com/PhzzX0/esports-api/controllers/site"
	sponsorController "github.com/PhzzX0/esports-api/controllers/sponsor"
)

// SetupPublicRoutes registers the read-only “/api/*” site endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/home", siteController.GetHome(db))

		api.GET("/news", newsController.GetNews(db))
		api.GET("/players", playerController.GetPlayers(db))
		api.GET("/matches", matchController.GetMatches(db))
		api.GET("/sponsors", sponsorController.GetSponsors(db))

		api.GET("/products", productController.GetProducts(db))
		api.GET("/products/:id", productController.GetProductByID(db))
	}
}
