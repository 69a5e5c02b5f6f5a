package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

// GET /shop/wishlist — the session's wished products, oldest first. Entries
// whose product has been deleted are omitted.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var entries []models.WishlistEntry
		if err := db.Where("session_id = ?", sid).Order("created_at ASC").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		products := []models.Product{}
		for _, entry := range entries {
			var product models.Product
			if err := db.Preload("Variants").Preload("Discount").First(&product, entry.ProductID).Error; err != nil {
				continue // product gone, entry is stale
			}
			products = append(products, product)
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /shop/wishlist/:product_id — toggle. Returns whether the product is
// wished after the call.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var entry models.WishlistEntry
		err = db.Where("session_id = ? AND product_id = ?", sid, product.ID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = models.WishlistEntry{SessionID: sid, ProductID: product.ID}
			if err := db.Create(&entry).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"wished": true})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		if err := db.Delete(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"wished": false})
	}
}
