package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arjune867/kriukesnack/models"
)

const sessionTTL = 30 * 24 * time.Hour

// POST /auth/session
// Creates an anonymous shopper session and returns its JWT. The token carries
// the session id every cart/wishlist call is keyed by.
func CreateShopperSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.ShopperSession{
			ID:        uuid.NewString(),
			ExpiresAt: time.Now().Add(sessionTTL),
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := issueSessionToken(session.ID, "shopper", session.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(id, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"role":       role,
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
