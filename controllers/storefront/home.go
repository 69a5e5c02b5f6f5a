package storefrontController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

// GET /promotions — home slider banners.
func GetPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promotions []models.Promotion
		if err := db.Find(&promotions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
			return
		}
		c.JSON(http.StatusOK, promotions)
	}
}

// GET /quick-actions — home shortcut tiles.
func GetQuickActions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var actions []models.QuickAction
		if err := db.Find(&actions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quick actions"})
			return
		}
		c.JSON(http.StatusOK, actions)
	}
}
