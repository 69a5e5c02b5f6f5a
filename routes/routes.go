package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public storefront,
// shopper, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog + shopper (JWT-protected) cart and wishlist
	SetupShopRoutes(r, db)

	// Admin dashboard (admin-JWT-protected)
	SetupAdminRoutes(r, db)
}
