// Seeds the product catalog. Rerunnable: existing ids are refreshed in place
// via upsert, never duplicated.
package main

import (
	"context"
	"log"

	"github.com/safar/storefront/internal/config"
	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/store"
	"github.com/safar/storefront/migrations"
)

var catalog = []models.Product{
	{
		ID:                 "v1",
		Title:              "MIDNIGHT MIST",
		Category:           "PREMIUM VAPE",
		Type:               "Vape",
		PriceMinor:         249900,
		OriginalPriceMinor: 349900,
		Currency:           "INR",
		Rating:             4.8,
		Reviews:            127,
		Description:        "Experience the cool, refreshing blend of dark berries inspired by the fresh mountain air of the Swiss Alps.",
		ImagePath:          "product1.png",
		BgPath:             "product1_bg.png",
		Features: models.StringList{
			"Premium Quality Materials",
			"5000+ Puffs Capacity",
			"Rechargeable Battery",
			"Leak-Proof Design",
		},
		Specifications: models.SpecMap{
			"Nicotine Strength": "5% (50mg)",
			"Battery":           "650mAh Rechargeable",
			"E-liquid Capacity": "12ml",
			"Puff Count":        "5000+ puffs",
			"Flavor":            "Dark Berry Blend",
		},
		IsFeatured: true,
	},
	{
		ID:                 "v2",
		Title:              "ARCTIC FREEZE",
		Category:           "PREMIUM VAPE",
		Type:               "Vape",
		PriceMinor:         229900,
		OriginalPriceMinor: 329900,
		Currency:           "INR",
		Rating:             4.7,
		Reviews:            98,
		Description:        "A crisp and refreshing menthol chill that captures the essence of the frozen northern glaciers.",
		ImagePath:          "product2.png",
		BgPath:             "product2_bg.png",
		Features: models.StringList{
			"Intense Menthol Flavor",
			"5000+ Puffs Capacity",
			"Fast Charging Technology",
			"Ergonomic Design",
		},
		Specifications: models.SpecMap{
			"Nicotine Strength": "5% (50mg)",
			"Battery":           "650mAh Rechargeable",
			"E-liquid Capacity": "12ml",
			"Puff Count":        "5000+ puffs",
			"Flavor":            "Arctic Menthol",
		},
	},
	{
		ID:                 "h1",
		Title:              "CRIMSON CONQUEST",
		Category:           "ELITE HOOKAH",
		Type:               "Hookah",
		PriceMinor:         1299900,
		OriginalPriceMinor: 1699900,
		Currency:           "INR",
		Rating:             4.9,
		Reviews:            67,
		Description:        "A bold statement piece with a ruby reflection that resonates with passion and power.",
		ImagePath:          "hookah_ruby.png",
		BgPath:             "product1_bg.png",
		Features: models.StringList{
			"Premium Ruby Mirror Finish",
			"Hand-Crafted Design",
			"Superior Smoke Quality",
			"Complete Accessories Included",
		},
		Specifications: models.SpecMap{
			"Height":      "24 inches",
			"Material":    "Stainless Steel & Glass",
			"Finish":      "Ruby Mirror",
			"Hose Length": "72 inches",
			"Bowl Type":   "Premium Ceramic",
		},
		IsFeatured: true,
	},
	{
		ID:                 "h2",
		Title:              "CRYSTAL CLARITY",
		Category:           "ELITE HOOKAH",
		Type:               "Hookah",
		PriceMinor:         1499900,
		OriginalPriceMinor: 1899900,
		Currency:           "INR",
		Rating:             5.0,
		Reviews:            45,
		Description:        "Experience absolute transparency with our master-crafted pure prism glass base.",
		ImagePath:          "hookah3_glass.png",
		BgPath:             "product2_bg.png",
		Features: models.StringList{
			"Pure Crystal Glass Base",
			"Master-Crafted Design",
			"Exceptional Clarity",
			"Complete Setup Included",
		},
		Specifications: models.SpecMap{
			"Height":      "26 inches",
			"Material":    "Premium Crystal Glass",
			"Finish":      "Clear Glass",
			"Hose Length": "72 inches",
			"Bowl Type":   "Premium Ceramic",
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := database.Migrate(ctx, db, migrations.FS, database.DirectionUp); err != nil {
		log.Fatalf("Run migrations: %v", err)
	}

	for _, product := range catalog {
		if _, err := store.UpsertProduct(ctx, db, &product); err != nil {
			log.Fatalf("Seed product %s: %v", product.ID, err)
		}
		log.Printf("Seeded product %s (%s)", product.ID, product.Title)
	}

	log.Printf("Seeded %d product(s)", len(catalog))
}
