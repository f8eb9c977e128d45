package playerController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/uploads"
)

// GET /api/players
func GetPlayers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var players []models.Player
		if err := db.Order("id ASC").Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
			return
		}
		c.JSON(http.StatusOK, players)
	}
}

func bindPlayerForm(c *gin.Context, player *models.Player) {
	if name := c.PostForm("name"); name != "" {
		player.Name = name
	}
	if role := c.PostForm("role"); role != "" {
		player.Role = role
	}
	if game, ok := c.GetPostForm("game"); ok {
		player.Game = game
	}
	if v, ok := c.GetPostForm("twitter"); ok {
		player.Twitter = v
	}
	if v, ok := c.GetPostForm("instagram"); ok {
		player.Instagram = v
	}
	if v, ok := c.GetPostForm("youtube"); ok {
		player.YouTube = v
	}
	if v, ok := c.GetPostForm("twitch"); ok {
		player.Twitch = v
	}
}

// POST /admin/players
func CreatePlayer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("name") == "" || c.PostForm("role") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and role are required"})
			return
		}

		var player models.Player
		bindPlayerForm(c, &player)

		if file, fileErr := c.FormFile("image"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "players")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			player.ImageURL = url
		}

		if err := db.Create(&player).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
			return
		}
		c.JSON(http.StatusCreated, player)
	}
}

// PUT /admin/players/:id
func UpdatePlayer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var player models.Player
		if err := db.First(&player, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve player"})
			}
			return
		}

		bindPlayerForm(c, &player)

		if file, fileErr := c.FormFile("image"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "players")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			player.ImageURL = url
		}

		if err := db.Save(&player).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
			return
		}
		c.JSON(http.StatusOK, player)
	}
}

// DELETE /admin/players/:id
func DeletePlayer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Player{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
	}
}
