package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same fields as
// CreateProduct; all are optional. Passing "variants" replaces the whole
// variant set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, cid).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = uint(cid)
		}
		if v := c.PostForm("discount_id"); v != "" {
			if v == "none" {
				product.DiscountID = nil
			} else {
				did, err := strconv.ParseUint(v, 10, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_id"})
					return
				}
				var discount models.DiscountCode
				if err := db.First(&discount, did).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Discount does not exist"})
					return
				}
				id := uint(did)
				product.DiscountID = &id
			}
		}
		if v := c.PostForm("link_tiktok"); v != "" {
			product.Links.Tiktok = v
		}
		if v := c.PostForm("link_tokopedia"); v != "" {
			product.Links.Tokopedia = v
		}
		if v := c.PostForm("link_shopee"); v != "" {
			product.Links.Shopee = v
		}
		if v := c.PostForm("link_lazada"); v != "" {
			product.Links.Lazada = v
		}
		if v := c.PostForm("image_url"); v != "" {
			product.ImageURL = v
		}
		if uploaded, err := saveProductImage(c); err == nil {
			product.ImageURL = uploaded
		}

		var newVariants []models.Variant
		if v := c.PostForm("variants"); v != "" {
			newVariants, err = parseVariants(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if newVariants != nil {
			// Replace the variant set. Cart snapshots referencing removed
			// variant ids are dropped on their next hydration.
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace variants"})
				return
			}
			for i := range newVariants {
				newVariants[i].ProductID = product.ID
			}
			product.Variants = newVariants
		}

		if err := tx.Save(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
