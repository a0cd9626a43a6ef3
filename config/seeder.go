package config

import (
	"log"

	"shop_backend/models"

	"gorm.io/gorm"
)

// baselineProducts is the catalog inserted into an empty store at startup.
func baselineProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Smartphone Galaxy S24",
			Price:       2999.99,
			Category:    "Electronics",
			Description: "Latest smartphone with advanced AI features",
			Image:       "https://via.placeholder.com/300x300?text=Galaxy+S24",
			InStock:     true,
			Rating:      4.5,
			Stock:       50,
		},
		{
			Name:        "Wireless Bluetooth Headphones",
			Price:       349.99,
			Category:    "Audio",
			Description: "Noise-cancelling headphones with 30h battery",
			Image:       "https://via.placeholder.com/300x300?text=Headphones",
			InStock:     true,
			Rating:      4.3,
			Stock:       50,
		},
		{
			Name:        "Smart Watch Pro",
			Price:       899.99,
			Category:    "Wearables",
			Description: "Health and fitness tracker with GPS",
			Image:       "https://via.placeholder.com/300x300?text=Smart+Watch",
			InStock:     false,
			Rating:      4.7,
			Stock:       0,
		},
		{
			Name:        "Laptop Ultra Thin",
			Price:       4599.99,
			Category:    "Computers",
			Description: "Lightweight laptop for professionals",
			Image:       "https://via.placeholder.com/300x300?text=Laptop",
			InStock:     true,
			Rating:      4.8,
			Stock:       50,
		},
		{
			Name:        "Gaming Keyboard RGB",
			Price:       299.99,
			Category:    "Accessories",
			Description: "Mechanical keyboard with RGB lighting",
			Image:       "https://via.placeholder.com/300x300?text=Keyboard",
			InStock:     true,
			Rating:      4.4,
			Stock:       50,
		},
		{
			Name:        "Wireless Mouse",
			Price:       149.99,
			Category:    "Accessories",
			Description: "Ergonomic wireless mouse",
			Image:       "https://via.placeholder.com/300x300?text=Mouse",
			InStock:     true,
			Rating:      4.2,
			Stock:       50,
		},
	}
}

// SeedProducts inserts the baseline catalog when the products table is empty.
// The check and the insert run in one transaction so that concurrent startups
// against the same store do not double-seed.
func SeedProducts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			log.Printf("Products already seeded (%d found), skipping", count)
			return nil
		}

		log.Println("🌱 Seeding products...")

		products := baselineProducts()
		if err := tx.Create(&products).Error; err != nil {
			log.Printf("Failed to seed products: %v", err)
			return err
		}

		log.Printf("✅ Seeded %d products", len(products))
		return nil
	})
}
