package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `gorm:"index" json:"category_id"`
	Category    Category `json:"category"`

	// Display aggregates, maintained by the review controller.
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	SoldCount   int     `json:"sold_count"`

	// Optional product-level promotional discount.
	DiscountID *uint         `json:"discount_id,omitempty"`
	Discount   *DiscountCode `gorm:"foreignKey:DiscountID" json:"discount,omitempty"`

	Links    EcommerceLinks `gorm:"embedded;embeddedPrefix:link_" json:"links"`
	Variants []Variant      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variant is one purchasable size/flavor option of a product with its own
// price (whole rupiah) and stock.
type Variant struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Name      string `gorm:"not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Stock     int    `json:"stock"`
}

// EcommerceLinks holds the marketplace listing URLs shown on product cards.
type EcommerceLinks struct {
	Tiktok    string `json:"tiktok"`
	Tokopedia string `json:"tokopedia"`
	Shopee    string `json:"shopee"`
	Lazada    string `json:"lazada"`
}

// TotalStock sums stock across all variants. A product with zero total stock
// is fully out of stock.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}
