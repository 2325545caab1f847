package main

import (
	"log"
	"os"

	"go-product-catalog/internal/model"
	"go-product-catalog/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a handful of demo products for local development.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	// 3. Insert demo rows (skipping names that already exist)
	demo := []struct {
		name     string
		price    float64
		stock    int
		category model.Category
	}{
		{"Widget", 10, 5, model.CategoryElectronics},
		{"Wireless Mouse", 24.99, 120, model.CategoryElectronics},
		{"Cotton T-Shirt", 12.50, 300, model.CategoryClothing},
		{"Dark Chocolate Bar", 3.75, 80, model.CategoryFood},
		{"Go Programming Handbook", 39.90, 40, model.CategoryBooks},
		{"Wooden Train Set", 29.00, 15, model.CategoryToys},
	}

	for _, d := range demo {
		var count int64
		db.Model(&model.Product{}).Where("name = ?", d.name).Count(&count)
		if count > 0 {
			log.Printf("Skipping '%s' (already seeded)", d.name)
			continue
		}

		product, err := model.NewProduct(d.name, d.price, d.stock, d.category)
		if err != nil {
			log.Fatalf("Invalid seed row '%s': %v", d.name, err)
		}
		if err := db.Create(product).Error; err != nil {
			log.Fatalf("Failed to seed '%s': %v", d.name, err)
		}
		log.Printf("Seeded '%s' with ID %d", product.Name, product.ID)
	}

	log.Println("Seeding complete")
}
