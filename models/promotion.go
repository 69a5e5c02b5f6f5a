package models

// Promotion is a slider banner on the home screen linking to a product.
type Promotion struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	ProductID uint   `json:"product_id"`
}

// QuickAction is a shortcut tile on the home screen.
type QuickAction struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Link  string `json:"link"`
}
