package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/uploads"
)

// CreateProduct creates a new shop product from a multipart form with an
// optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			Name:  name,
			Price: price,
			Tag:   c.PostForm("tag"),
		}

		if ratingStr := c.PostForm("rating"); ratingStr != "" {
			rating, parseErr := strconv.Atoi(ratingStr)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
			product.Rating = rating
		}

		// Image upload (optional)
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			url, saveErr := uploads.SaveImage(c, file, "products")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			product.ImageURL = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
