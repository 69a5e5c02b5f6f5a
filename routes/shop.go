package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/arjune867/kriukesnack/controllers/cart"
	productControllers "github.com/arjune867/kriukesnack/controllers/product"
	reviewControllers "github.com/arjune867/kriukesnack/controllers/review"
	storefrontController "github.com/arjune867/kriukesnack/controllers/storefront"
	wishlistControllers "github.com/arjune867/kriukesnack/controllers/wishlist"
	"github.com/arjune867/kriukesnack/middleware"
)

// SetupShopRoutes registers the public catalog endpoints and the
// JWT-protected "/shop/*" shopper endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public browsing ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
	r.POST("/products/:id/reviews", reviewControllers.CreateReview(db))
	r.GET("/categories", productControllers.GetAllCategories(db))
	r.GET("/categories/:id", productControllers.GetCategoryByID(db))
	r.GET("/promotions", storefrontController.GetPromotions(db))
	r.GET("/quick-actions", storefrontController.GetQuickActions(db))

	// ──────────────── Shopper session ────────────────
	shopGroup := r.Group("/shop")
	shopGroup.Use(middleware.ValidateSessionToken)
	{
		cartGroup := shopGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("/items", cartControllers.AddCartItem(db))
			cartGroup.PUT("/items", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/items/:product_id/:variant_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
			cartGroup.POST("/discount", cartControllers.ApplyDiscount(db))
			cartGroup.DELETE("/discount", cartControllers.RemoveDiscount(db))
		}

		shopGroup.GET("/wishlist", wishlistControllers.GetWishlist(db))
		shopGroup.POST("/wishlist/:product_id", wishlistControllers.ToggleWishlist(db))
	}
}
