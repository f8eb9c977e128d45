package siteController

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
)

// HomePayload aggregates everything the landing page renders in one request.
type HomePayload struct {
	News     []models.News    `json:"news"`
	Players  []models.Player  `json:"players"`
	Matches  []models.Match   `json:"matches"`
	Products []models.Product `json:"products"`
	Sponsors []models.Sponsor `json:"sponsors"`
}

// GET /api/home
//
// Sponsors are decorative on this page: a failed sponsor query degrades to an
// empty list instead of failing the whole payload. Every other section fails
// loudly.
func GetHome(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload HomePayload

		if err := db.Order("created_at DESC").Limit(3).Find(&payload.News).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
			return
		}
		if err := db.Order("id ASC").Find(&payload.Players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
			return
		}
		if err := db.Where("starts_at >= ?", time.Now()).
			Order("starts_at ASC").Find(&payload.Matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
			return
		}
		if err := db.Order("created_at DESC").Limit(4).Find(&payload.Products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if err := db.Order("id ASC").Find(&payload.Sponsors).Error; err != nil {
			log.Printf("home: sponsor query failed, rendering without sponsors: %v", err)
			payload.Sponsors = []models.Sponsor{}
		}

		c.JSON(http.StatusOK, payload)
	}
}
