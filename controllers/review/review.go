package reviewControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/arjune867/kriukesnack/controllers/admin"
	"github.com/arjune867/kriukesnack/models"
)

type ReviewInput struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GET /products/:id/reviews — newest first.
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", product.ID).Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /products/:id/reviews
// Stores the review and recomputes the product's rating / review count
// aggregates in the same transaction.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.Review{
			ProductID: product.ID,
			Author:    input.Author,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Create(&review).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		// Recompute display aggregates from stored reviews.
		var stats struct {
			Count int64
			Avg   float64
		}
		if err := tx.Model(&models.Review{}).
			Select("COUNT(*) as count, AVG(rating) as avg").
			Where("product_id = ?", product.ID).
			Scan(&stats).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product rating"})
			return
		}
		if err := tx.Model(&product).Updates(map[string]interface{}{
			"rating":       stats.Avg,
			"review_count": stats.Count,
		}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product rating"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit review"})
			return
		}

		adminController.BroadcastActivity("review_created",
			fmt.Sprintf("%s memberi %d bintang untuk %s", review.Author, review.Rating, product.Name))

		c.JSON(http.StatusCreated, review)
	}
}
