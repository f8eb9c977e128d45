package newsController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/uploads"
)

// GET /api/news
func GetNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var news []models.News
		if err := db.Order("created_at DESC").Find(&news).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
			return
		}
		c.JSON(http.StatusOK, news)
	}
}

// POST /admin/news
func CreateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		description := c.PostForm("description")
		if title == "" || description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
			return
		}

		news := models.News{
			Title:       title,
			Description: description,
			Link:        c.PostForm("link"),
		}

		if file, fileErr := c.FormFile("image"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "news")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			news.ImageURL = url
		}

		if err := db.Create(&news).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news entry"})
			return
		}
		c.JSON(http.StatusCreated, news)
	}
}

// PUT /admin/news/:id
func UpdateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var news models.News
		if err := db.First(&news, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "News entry not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve news entry"})
			}
			return
		}

		if title := c.PostForm("title"); title != "" {
			news.Title = title
		}
		if description := c.PostForm("description"); description != "" {
			news.Description = description
		}
		if link, ok := c.GetPostForm("link"); ok {
			news.Link = link
		}
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "news")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			news.ImageURL = url
		}

		if err := db.Save(&news).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news entry"})
			return
		}
		c.JSON(http.StatusOK, news)
	}
}

// DELETE /admin/news/:id
func DeleteNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.News{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news entry"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "News entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "News entry deleted successfully"})
	}
}
