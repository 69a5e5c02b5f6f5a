package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/arjune867/kriukesnack/controllers/admin"
	cartControllers "github.com/arjune867/kriukesnack/controllers/cart"
	productcontroller "github.com/arjune867/kriukesnack/controllers/product"
	storefrontController "github.com/arjune867/kriukesnack/controllers/storefront"
	"github.com/arjune867/kriukesnack/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the admin JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Discount Codes ───────────
		discountAdmin := adminGroup.Group("/discounts")
		{
			discountAdmin.GET("", adminController.GetDiscounts(db))
			discountAdmin.POST("", adminController.CreateDiscount(db))
			discountAdmin.PUT("/:id", adminController.UpdateDiscount(db))
			discountAdmin.DELETE("/:id", adminController.DeleteDiscount(db))
		}

		// ─────────── Promotions ───────────
		promoAdmin := adminGroup.Group("/promotions")
		{
			promoAdmin.GET("", storefrontController.GetPromotions(db))
			promoAdmin.POST("", adminController.CreatePromotion(db))
			promoAdmin.PUT("/:id", adminController.UpdatePromotion(db))
			promoAdmin.DELETE("/:id", adminController.DeletePromotion(db))
		}

		// ─────────── Quick Actions ───────────
		quickActionAdmin := adminGroup.Group("/quick-actions")
		{
			quickActionAdmin.GET("", storefrontController.GetQuickActions(db))
			quickActionAdmin.POST("", adminController.CreateQuickAction(db))
			quickActionAdmin.PUT("/:id", adminController.UpdateQuickAction(db))
			quickActionAdmin.DELETE("/:id", adminController.DeleteQuickAction(db))
		}

		// ─────────── Shopper Carts & Live Feed ───────────
		adminGroup.GET("/sessions/:session_id/cart", cartControllers.GetAdminSessionCart(db))
		adminGroup.GET("/feed", adminController.ActivityFeedHandler)
	}
}
