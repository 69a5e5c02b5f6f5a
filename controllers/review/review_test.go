package reviewControllers

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

func setupReviewRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Variant{}, &models.Review{}))
	require.NoError(t, db.Create(&models.Product{Name: "Keripik Pisang Rasa Original"}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products/:id/reviews", GetProductReviews(db))
	r.POST("/products/:id/reviews", CreateReview(db))
	return r, db
}

func postReview(t *testing.T, r *gin.Engine, productID string, input ReviewInput) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/products/"+productID+"/reviews", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReview_UpdatesProductAggregates(t *testing.T) {
	r, db := setupReviewRouter(t)

	w := postReview(t, r, "1", ReviewInput{Author: "Budi", Rating: 5, Comment: "Renyah banget!"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = postReview(t, r, "1", ReviewInput{Author: "Sari", Rating: 4})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, 2, product.ReviewCount)
	assert.InDelta(t, 4.5, product.Rating, 0.001)
}

func TestCreateReview_RejectsOutOfRangeRating(t *testing.T) {
	r, _ := setupReviewRouter(t)

	w := postReview(t, r, "1", ReviewInput{Author: "Budi", Rating: 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postReview(t, r, "1", ReviewInput{Author: "Budi", Rating: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReview_UnknownProduct(t *testing.T) {
	r, _ := setupReviewRouter(t)

	w := postReview(t, r, "99", ReviewInput{Author: "Budi", Rating: 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductReviews_NewestFirst(t *testing.T) {
	r, db := setupReviewRouter(t)
	postReview(t, r, "1", ReviewInput{Author: "Budi", Rating: 5, Comment: "Pertama"})
	postReview(t, r, "1", ReviewInput{Author: "Sari", Rating: 4, Comment: "Kedua"})

	// Force distinct timestamps the fast test run may not produce.
	require.NoError(t, db.Exec("UPDATE reviews SET created_at = datetime(created_at, '-1 hour') WHERE author = 'Budi'").Error)

	req := httptest.NewRequest(http.MethodGet, "/products/1/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, "Sari", reviews[0].Author)
	assert.Equal(t, "Budi", reviews[1].Author)
}
