package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

// GetProducts lists products with optional search / category / price filters
// and sorting.
// Query params: search, category_id, min_price, max_price, sort_by, order
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		switch sortBy {
		case "created_at", "name", "rating", "sold_count", "review_count":
		default:
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).
			Preload("Category").Preload("Variants").Preload("Discount")

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		// Price filters match against any variant of the product.
		if minPriceStr != "" || maxPriceStr != "" {
			query = query.
				Joins("JOIN variants ON variants.product_id = products.id").
				Distinct("products.*")
			if minPriceStr != "" {
				if mp, err := strconv.ParseInt(minPriceStr, 10, 64); err == nil {
					query = query.Where("variants.price >= ?", mp)
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
					return
				}
			}
			if maxPriceStr != "" {
				if mp, err := strconv.ParseInt(maxPriceStr, 10, 64); err == nil {
					query = query.Where("variants.price <= ?", mp)
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
					return
				}
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
