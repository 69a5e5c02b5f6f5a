package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

const promoPublicPath = "/uploads/promotions"

func promoUploadDir() string {
	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "uploads"
	}
	return filepath.Join(base, "promotions")
}

// savePromoImage stores an uploaded banner image and returns its public URL.
func savePromoImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	dir := promoUploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", promoPublicPath, filename), nil
}

// POST /admin/promotions
// Accepts a "product_id" form field plus either an "image" file upload or an
// "image_url" field.
func CreatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productIDStr := c.PostForm("product_id")
		productID, err := strconv.ParseUint(productIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		imageURL := c.PostForm("image_url")
		if uploaded, err := savePromoImage(c); err == nil {
			imageURL = uploaded
		}
		if imageURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An image or image_url is required"})
			return
		}

		promotion := models.Promotion{ImageURL: imageURL, ProductID: uint(productID)}
		if err := db.Create(&promotion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
			return
		}
		c.JSON(http.StatusCreated, promotion)
	}
}

// PUT /admin/promotions/:id
func UpdatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var promotion models.Promotion
		if err := db.First(&promotion, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}

		if v := c.PostForm("product_id"); v != "" {
			productID, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
				return
			}
			promotion.ProductID = uint(productID)
		}
		if v := c.PostForm("image_url"); v != "" {
			promotion.ImageURL = v
		}
		if uploaded, err := savePromoImage(c); err == nil {
			// Drop the previously uploaded file, if it was ours.
			if strings.HasPrefix(promotion.ImageURL, promoPublicPath) {
				_ = os.Remove(filepath.Join(promoUploadDir(), filepath.Base(promotion.ImageURL)))
			}
			promotion.ImageURL = uploaded
		}

		if err := db.Save(&promotion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
			return
		}
		c.JSON(http.StatusOK, promotion)
	}
}

// DELETE /admin/promotions/:id
func DeletePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var promotion models.Promotion
		if err := db.First(&promotion, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}

		if strings.HasPrefix(promotion.ImageURL, promoPublicPath) {
			localPath := filepath.Join(promoUploadDir(), filepath.Base(promotion.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image file"})
				return
			}
		}

		if err := db.Delete(&promotion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}
