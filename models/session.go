package models

import "time"

// ShopperSession is an anonymous storefront session. Cart and wishlist rows
// are keyed by its ID.
type ShopperSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
