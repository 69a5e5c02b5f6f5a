package models

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountCode is either a product-level promo (referenced by
// Product.DiscountID) or a cart-level code entered at checkout. Codes are
// stored upper-cased; matching is case-insensitive.
type DiscountCode struct {
	ID    uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code  string       `gorm:"unique;not null" json:"code"`
	Type  DiscountType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value float64      `gorm:"not null" json:"value"`
}
