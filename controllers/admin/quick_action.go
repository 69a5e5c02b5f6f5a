package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

type QuickActionInput struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Link  string `json:"link"`
}

// POST /admin/quick-actions
func CreateQuickAction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuickActionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		action := models.QuickAction{Name: input.Name, Icon: input.Icon, Color: input.Color, Link: input.Link}
		if err := db.Create(&action).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quick action"})
			return
		}
		c.JSON(http.StatusCreated, action)
	}
}

// PUT /admin/quick-actions/:id
func UpdateQuickAction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var action models.QuickAction
		if err := db.First(&action, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quick action not found"})
			return
		}

		var input QuickActionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		action.Name = input.Name
		action.Icon = input.Icon
		action.Color = input.Color
		action.Link = input.Link
		if err := db.Save(&action).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quick action"})
			return
		}
		c.JSON(http.StatusOK, action)
	}
}

// DELETE /admin/quick-actions/:id
func DeleteQuickAction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.QuickAction{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quick action"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quick action not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quick action deleted"})
	}
}
