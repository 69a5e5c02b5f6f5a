package models

import "time"

// CartSnapshot is the persisted form of one shopper session's cart: an
// ordered list of (product, variant, quantity) entries plus the applied
// discount, both serialized as JSON. The cart core treats the payload as
// opaque; every mutation replaces the whole row (last write wins).
type CartSnapshot struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionID    string    `gorm:"uniqueIndex" json:"session_id"` // one cart per session
	ItemsJSON    string    `json:"-"`
	DiscountJSON string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
