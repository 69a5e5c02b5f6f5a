package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedDefaults loads the starter catalog when the store is empty, so a fresh
// install serves a working storefront. Runs once; existing data is never
// touched.
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	discounts := []DiscountCode{
		{Code: "HEMAT10", Type: DiscountPercentage, Value: 10},
		{Code: "KRIUKE5K", Type: DiscountFixed, Value: 5000},
	}
	if err := db.Create(&discounts).Error; err != nil {
		return err
	}

	categories := []Category{
		{Name: "Keripik Pisang"},
		{Name: "Promo Spesial"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []Product{
		{
			Name:        "Keripik Pisang Rasa Original",
			Description: "Rasa original yang gurih dan renyah, dibuat dari pisang pilihan. Cocok untuk teman santai kapan saja!",
			ImageURL:    "https://picsum.photos/seed/original-kriuke/400/400",
			CategoryID:  categories[0].ID,
			Rating:      4.8,
			SoldCount:   132,
			DiscountID:  &discounts[0].ID,
			Variants: []Variant{
				{Name: "100g", Price: 25000, Stock: 40},
				{Name: "250g", Price: 55000, Stock: 15},
			},
		},
		{
			Name:        "Kriuke Rasa Coklat",
			Description: "Perpaduan sempurna rasa coklat lumer. Bikin nagih sejak gigitan pertama!",
			ImageURL:    "https://picsum.photos/seed/coklat-kriuke/400/400",
			CategoryID:  categories[1].ID,
			Rating:      4.9,
			SoldCount:   250,
			Variants: []Variant{
				{Name: "100g", Price: 20000, Stock: 60},
			},
		},
		{
			Name:        "Keripik Pisang Rasa Balado",
			Description: "Kriuknya kripik pisang dibalut dengan bumbu balado pedas yang mantap. Favorit semua kalangan!",
			ImageURL:    "https://picsum.photos/seed/balado-kriuke/400/400",
			CategoryID:  categories[0].ID,
			Rating:      4.7,
			SoldCount:   98,
			Variants: []Variant{
				{Name: "100g", Price: 22000, Stock: 35},
				{Name: "250g", Price: 48000, Stock: 12},
			},
		},
		{
			Name:        "Keripik Pisang Pedas Manis",
			Description: "Taburan bumbu pedas manis yang melimpah di setiap kepingnya. Rasa pedas manisnya pas banget di lidah.",
			ImageURL:    "https://picsum.photos/seed/pedas-manis-kriuke/400/400",
			CategoryID:  categories[0].ID,
			Rating:      4.6,
			SoldCount:   115,
			Variants: []Variant{
				{Name: "100g", Price: 22000, Stock: 30},
			},
		},
		{
			Name:        "Jagung Bakar Special",
			Description: "Aroma dan rasa jagung bakar yang khas, membawa sensasi seperti sedang berpesta barbekyu.",
			ImageURL:    "https://picsum.photos/seed/jagung-bakar-kriuke/400/400",
			CategoryID:  categories[1].ID,
			Rating:      4.5,
			SoldCount:   88,
			Variants: []Variant{
				{Name: "100g", Price: 17000, Stock: 50},
			},
		},
		{
			Name:        "Premium Green Tea",
			Description: "Rasa green tea yang unik dan sedikit pahit, memberikan pengalaman ngemil yang berbeda dan modern.",
			ImageURL:    "https://picsum.photos/seed/greentea-kriuke/400/400",
			CategoryID:  categories[0].ID,
			Rating:      4.7,
			SoldCount:   102,
			Variants: []Variant{
				{Name: "100g", Price: 18000, Stock: 25},
			},
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	promotions := []Promotion{
		{ImageURL: "https://picsum.photos/seed/promo1/800/400", ProductID: products[1].ID},
		{ImageURL: "https://picsum.photos/seed/promo2/800/400", ProductID: products[4].ID},
		{ImageURL: "https://picsum.photos/seed/promo3/800/400", ProductID: products[0].ID},
	}
	if err := db.Create(&promotions).Error; err != nil {
		return err
	}

	quickActions := []QuickAction{
		{Name: "Promo", Icon: "ticket", Color: "orange", Link: "/promo"},
		{Name: "Terlaris", Icon: "fire", Color: "red", Link: "/products?sort_by=sold_count"},
		{Name: "Baru", Icon: "sparkles", Color: "green", Link: "/products?sort_by=created_at"},
	}
	if err := db.Create(&quickActions).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded default catalog data")
	return nil
}
