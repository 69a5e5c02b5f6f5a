package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/cart"
	"github.com/arjune867/kriukesnack/models"
)

type DiscountInput struct {
	Code  string              `json:"code" binding:"required"`
	Type  models.DiscountType `json:"type" binding:"required,oneof=percentage fixed"`
	Value float64             `json:"value" binding:"required,gt=0"`
}

// GET /admin/discounts
func GetDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discounts []models.DiscountCode
		if err := db.Find(&discounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discounts"})
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

// POST /admin/discounts
// Codes are canonicalized to upper case on every write so that shopper input
// can match case-insensitively.
func CreateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		discount := models.DiscountCode{
			Code:  cart.NormalizeCode(input.Code),
			Type:  input.Type,
			Value: input.Value,
		}
		if discount.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code must not be blank"})
			return
		}
		if err := db.Create(&discount).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create discount (duplicate code?)"})
			return
		}
		c.JSON(http.StatusCreated, discount)
	}
}

// PUT /admin/discounts/:id
func UpdateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var discount models.DiscountCode
		if err := db.First(&discount, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		discount.Code = cart.NormalizeCode(input.Code)
		discount.Type = input.Type
		discount.Value = input.Value
		if err := db.Save(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount"})
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// DELETE /admin/discounts/:id
// Products still referencing the deleted discount simply price undiscounted;
// carts that captured the code keep their serialized copy.
func DeleteDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.DiscountCode{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discount"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
	}
}
