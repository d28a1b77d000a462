package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prodcat/internal/config"
	"prodcat/internal/db"
	"prodcat/internal/model"
	"prodcat/internal/repository"
)

// seedProduct describes one demo catalog entry.
type seedProduct struct {
	ID          string
	Name        string
	Description string
	IsPremium   bool
	Price       string
}

var seedProducts = []seedProduct{
	{
		ID:          "6f1f64c2-7a35-4b02-9c5e-0d7a3b1e8a01",
		Name:        "House Blend Coffee",
		Description: "Medium roast, 250g bag",
	},
	{
		ID:          "6f1f64c2-7a35-4b02-9c5e-0d7a3b1e8a02",
		Name:        "Premium Single Origin",
		Description: "Ethiopian Yirgacheffe, 250g bag",
		IsPremium:   true,
		Price:       "25.50",
	},
	{
		ID:          "6f1f64c2-7a35-4b02-9c5e-0d7a3b1e8a03",
		Name:        "Ceramic Mug",
		Description: "350ml, dishwasher safe",
	},
	{
		ID:          "6f1f64c2-7a35-4b02-9c5e-0d7a3b1e8a04",
		Name:        "Premium Pour-Over Kit",
		IsPremium:   true,
		Price:       "79.00",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	created, existing := 0, 0
	for _, sp := range seedProducts {
		id, err := uuid.Parse(sp.ID)
		if err != nil {
			log.Fatalf("Invalid seed product id %q: %v", sp.ID, err)
		}

		product := &model.Product{
			ID:        id,
			Name:      sp.Name,
			IsPremium: sp.IsPremium,
		}
		if sp.Description != "" {
			desc := sp.Description
			product.Description = &desc
		}
		if sp.Price != "" {
			price, err := decimal.NewFromString(sp.Price)
			if err != nil {
				log.Fatalf("Invalid seed product price %q: %v", sp.Price, err)
			}
			product.Price = &price
		}

		_, inserted, err := productRepo.FindByIDOrCreate(ctx, product)
		if err != nil {
			log.Fatalf("Failed to seed product %q: %v", sp.Name, err)
		}
		if inserted {
			created++
		} else {
			existing++
		}
	}

	log.Printf("Seeded %d new products (%d already present)", created, existing)
}
