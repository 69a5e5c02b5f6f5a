package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

// CreateProduct creates a new product with its variants + optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		categoryIDStr := c.PostForm("category_id")
		variantsStr := c.PostForm("variants")
		if name == "" || categoryIDStr == "" || variantsStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, category_id, and variants are required"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		variants, err := parseVariants(variantsStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Optional product-level discount link
		var discountID *uint
		if v := c.PostForm("discount_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_id"})
				return
			}
			var discount models.DiscountCode
			if err := db.First(&discount, id64).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Discount does not exist"})
				return
			}
			id := uint(id64)
			discountID = &id
		}

		imageURL := c.PostForm("image_url")
		if uploaded, err := saveProductImage(c); err == nil {
			imageURL = uploaded
		}

		newProduct := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			ImageURL:    imageURL,
			CategoryID:  uint(categoryID),
			DiscountID:  discountID,
			Links: models.EcommerceLinks{
				Tiktok:    c.PostForm("link_tiktok"),
				Tokopedia: c.PostForm("link_tokopedia"),
				Shopee:    c.PostForm("link_shopee"),
				Lazada:    c.PostForm("link_lazada"),
			},
			Variants: variants,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, newProduct)
	}
}
