package models

import "time"

// WishlistEntry marks a product as wished by a shopper session. Toggling an
// existing pair removes it.
type WishlistEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"index:idx_wishlist_session_product,unique" json:"session_id"`
	ProductID uint      `gorm:"index:idx_wishlist_session_product,unique" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
