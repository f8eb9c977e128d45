package sponsorController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/uploads"
)

// GET /api/sponsors
func GetSponsors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sponsors []models.Sponsor
		if err := db.Order("id ASC").Find(&sponsors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sponsors"})
			return
		}
		c.JSON(http.StatusOK, sponsors)
	}
}

// POST /admin/sponsors
func CreateSponsor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		file, err := c.FormFile("logo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sponsor logo is required"})
			return
		}
		url, saveErr := uploads.SaveImage(c, file, "sponsors")
		if saveErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
			return
		}

		sponsor := models.Sponsor{
			Name:    name,
			LogoURL: url,
			Website: c.PostForm("website"),
		}
		if err := db.Create(&sponsor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sponsor"})
			return
		}
		c.JSON(http.StatusCreated, sponsor)
	}
}

// PUT /admin/sponsors/:id
func UpdateSponsor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sponsor models.Sponsor
		if err := db.First(&sponsor, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sponsor not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sponsor"})
			}
			return
		}

		if name := c.PostForm("name"); name != "" {
			sponsor.Name = name
		}
		if website, ok := c.GetPostForm("website"); ok {
			sponsor.Website = website
		}
		if file, fileErr := c.FormFile("logo"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "sponsors")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			sponsor.LogoURL = url
		}

		if err := db.Save(&sponsor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sponsor"})
			return
		}
		c.JSON(http.StatusOK, sponsor)
	}
}

// DELETE /admin/sponsors/:id
func DeleteSponsor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Sponsor{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sponsor"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsor not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sponsor deleted successfully"})
	}
}
