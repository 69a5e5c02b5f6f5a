package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/cart"
	adminController "github.com/arjune867/kriukesnack/controllers/admin"
	"github.com/arjune867/kriukesnack/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type DiscountInput struct {
	Code string `json:"code" binding:"required"`
}

type cartLineView struct {
	Product            *models.Product `json:"product"`
	Variant            *models.Variant `json:"variant"`
	Quantity           int             `json:"quantity"`
	UnitPrice          int64           `json:"unit_price"`
	EffectiveUnitPrice int64           `json:"effective_unit_price"`
	LineTotal          int64           `json:"line_total"`
}

type cartView struct {
	Items           []cartLineView       `json:"items"`
	ItemCount       int                  `json:"item_count"`
	Subtotal        int64                `json:"subtotal"`
	DiscountAmount  int64                `json:"discount_amount"`
	Total           int64                `json:"total"`
	AppliedDiscount *models.DiscountCode `json:"applied_discount,omitempty"`
}

func buildCartView(c *cart.Cart) cartView {
	view := cartView{Items: []cartLineView{}, AppliedDiscount: c.AppliedDiscount()}
	for _, it := range c.Items() {
		effective := c.EffectiveUnitPrice(it)
		view.Items = append(view.Items, cartLineView{
			Product:            it.Product,
			Variant:            it.Variant,
			Quantity:           it.Quantity,
			UnitPrice:          it.Variant.Price,
			EffectiveUnitPrice: effective,
			LineTotal:          effective * int64(it.Quantity),
		})
	}
	view.ItemCount = c.ItemCount()
	view.Subtotal, view.DiscountAmount, view.Total = c.Totals()
	return view
}

func sessionCart(c *gin.Context, db *gorm.DB) (*cart.Cart, bool) {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	sc, err := openSessionCart(db, sessionIDVal.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return sc, true
}

// GET /shop/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// POST /shop/cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		var variant *models.Variant
		for i := range product.Variants {
			if product.Variants[i].ID == input.VariantID {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Variant does not exist"})
			return
		}

		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		// Out-of-stock adds and stock-capped merges are silent; the returned
		// cart state is the only feedback.
		if err := sc.AddItem(&product, variant, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// PUT /shop/cart/items
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		if err := sc.UpdateQuantity(input.ProductID, input.VariantID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// DELETE /shop/cart/items/:product_id/:variant_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err1 := strconv.ParseUint(c.Param("product_id"), 10, 64)
		variantID, err2 := strconv.ParseUint(c.Param("variant_id"), 10, 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product or variant ID"})
			return
		}

		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		if err := sc.RemoveItem(uint(productID), uint(variantID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// DELETE /shop/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		if err := sc.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// POST /shop/cart/discount
func ApplyDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		result, err := sc.ApplyDiscountCode(input.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		if result.Success {
			adminController.BroadcastActivity("discount_applied", "Kode "+result.Discount.Code+" diterapkan di keranjang")
		}
		c.JSON(http.StatusOK, gin.H{"result": result, "cart": buildCartView(sc)})
	}
}

// DELETE /shop/cart/discount
func RemoveDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := sessionCart(c, db)
		if !ok {
			return
		}
		if err := sc.RemoveDiscountCode(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}

// GET /admin/sessions/:session_id/cart
func GetAdminSessionCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		sc, err := openSessionCart(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(sc))
	}
}
