package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

const testSessionID = "test-session-1"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.DiscountCode{},
		&models.Product{},
		&models.Variant{},
		&models.CartSnapshot{},
	))

	discounts := []models.DiscountCode{
		{Code: "HEMAT10", Type: models.DiscountPercentage, Value: 10},
		{Code: "KRIUKE5K", Type: models.DiscountFixed, Value: 5000},
	}
	require.NoError(t, db.Create(&discounts).Error)

	category := models.Category{Name: "Keripik Pisang"}
	require.NoError(t, db.Create(&category).Error)

	products := []models.Product{
		{
			Name:       "Keripik Pisang Rasa Original",
			CategoryID: category.ID,
			DiscountID: &discounts[0].ID,
			Variants:   []models.Variant{{Name: "100g", Price: 25000, Stock: 40}},
		},
		{
			Name:       "Kriuke Rasa Coklat",
			CategoryID: category.ID,
			Variants:   []models.Variant{{Name: "100g", Price: 20000, Stock: 3}},
		},
		{
			Name:       "Jagung Bakar Special",
			CategoryID: category.ID,
			Variants:   []models.Variant{{Name: "100g", Price: 17000, Stock: 0}},
		},
	}
	require.NoError(t, db.Create(&products).Error)
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		c.Next()
	})
	r.GET("/shop/cart", GetCart(db))
	r.POST("/shop/cart/items", AddCartItem(db))
	r.PUT("/shop/cart/items", UpdateCartItem(db))
	r.DELETE("/shop/cart/items/:product_id/:variant_id", DeleteCartItem(db))
	r.DELETE("/shop/cart", ClearCart(db))
	r.POST("/shop/cart/discount", ApplyDiscount(db))
	r.DELETE("/shop/cart/discount", RemoveDiscount(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartView {
	t.Helper()
	var view cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func variantID(t *testing.T, db *gorm.DB, productID uint) uint {
	t.Helper()
	var v models.Variant
	require.NoError(t, db.Where("product_id = ?", productID).First(&v).Error)
	return v.ID
}

func TestGetCart_Empty(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodGet, "/shop/cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Total)
}

func TestAddCartItem_DiscountedSubtotal(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 1)

	w := doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid, Quantity: 2})

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	// 25000 with the linked 10% product discount
	assert.Equal(t, int64(25000), view.Items[0].UnitPrice)
	assert.Equal(t, int64(22500), view.Items[0].EffectiveUnitPrice)
	assert.Equal(t, int64(45000), view.Subtotal)
	assert.Equal(t, int64(45000), view.Total)
}

func TestAddCartItem_CapsAtStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 2) // stock 3

	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 2, VariantID: vid, Quantity: 2})
	w := doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 2, VariantID: vid, Quantity: 5})

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestAddCartItem_OutOfStockIsSilentNoOp(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 3) // stock 0

	w := doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 3, VariantID: vid, Quantity: 1})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestAddCartItem_UnknownProductRejected(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 99, VariantID: 1, Quantity: 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItem_ZeroRemovesLine(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 1)

	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid, Quantity: 2})
	w := doJSON(t, r, http.MethodPut, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid, Quantity: 0})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestApplyDiscount_FixedCode(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 1)
	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid, Quantity: 2})

	// lower-case input must match the canonical upper-case code
	w := doJSON(t, r, http.MethodPost, "/shop/cart/discount", DiscountInput{Code: "kriuke5k"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		} `json:"result"`
		Cart cartView `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Success)
	assert.Equal(t, int64(45000), resp.Cart.Subtotal)
	assert.Equal(t, int64(5000), resp.Cart.DiscountAmount)
	assert.Equal(t, int64(40000), resp.Cart.Total)
}

func TestApplyDiscount_UnknownCode(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/shop/cart/discount", DiscountInput{Code: "NOPE"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result struct {
			Success bool `json:"success"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Result.Success)
}

func TestRemoveDiscount_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	doJSON(t, r, http.MethodPost, "/shop/cart/discount", DiscountInput{Code: "HEMAT10"})
	w := doJSON(t, r, http.MethodDelete, "/shop/cart/discount", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeCart(t, w).AppliedDiscount)

	w = doJSON(t, r, http.MethodDelete, "/shop/cart/discount", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeCart(t, w).AppliedDiscount)
}

func TestGetCart_DropsDeletedProductLines(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid1 := variantID(t, db, 1)
	vid2 := variantID(t, db, 2)

	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid1, Quantity: 1})
	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 2, VariantID: vid2, Quantity: 1})

	// Admin deletes product 1 while it sits in the cart.
	require.NoError(t, db.Delete(&models.Product{}, 1).Error)

	w := doJSON(t, r, http.MethodGet, "/shop/cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(2), view.Items[0].Product.ID)
}

func TestClearCart_DropsDiscountToo(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 1)
	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 1, VariantID: vid, Quantity: 2})
	doJSON(t, r, http.MethodPost, "/shop/cart/discount", DiscountInput{Code: "HEMAT10"})

	w := doJSON(t, r, http.MethodDelete, "/shop/cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	assert.Empty(t, view.Items)
	assert.Nil(t, view.AppliedDiscount)
	assert.Equal(t, int64(0), view.Total)
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	vid := variantID(t, db, 2)

	doJSON(t, r, http.MethodPost, "/shop/cart/items", AddItemInput{ProductID: 2, VariantID: vid, Quantity: 2})

	var row models.CartSnapshot
	require.NoError(t, db.Where("session_id = ?", testSessionID).First(&row).Error)
	assert.NotEmpty(t, row.ItemsJSON)

	w := doJSON(t, r, http.MethodGet, "/shop/cart", nil)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}
