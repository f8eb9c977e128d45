package matchController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
)

type MatchInput struct {
	Tournament string    `json:"tournament" binding:"required"`
	Opponent   string    `json:"opponent" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
}

// GET /api/matches — full schedule, soonest first.
func GetMatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var matches []models.Match
		if err := db.Order("starts_at ASC").Find(&matches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
			return
		}
		c.JSON(http.StatusOK, matches)
	}
}

// POST /admin/matches
func CreateMatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MatchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		match := models.Match{
			Tournament: input.Tournament,
			Opponent:   input.Opponent,
			StartsAt:   input.StartsAt,
		}
		if err := db.Create(&match).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
			return
		}
		c.JSON(http.StatusCreated, match)
	}
}

// PUT /admin/matches/:id
func UpdateMatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var match models.Match
		if err := db.First(&match, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve match"})
			}
			return
		}

		var input MatchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		match.Tournament = input.Tournament
		match.Opponent = input.Opponent
		match.StartsAt = input.StartsAt
		if err := db.Save(&match).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match"})
			return
		}
		c.JSON(http.StatusOK, match)
	}
}

// DELETE /admin/matches/:id
func DeleteMatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Match{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
	}
}
