package integration

import (
	"context"
	"testing"

	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/store"
)

func sampleProduct(id string) *models.Product {
	return &models.Product{
		ID:                 id,
		Title:              "MIDNIGHT MIST",
		Category:           "PREMIUM VAPE",
		Type:               "vape",
		PriceMinor:         249900,
		OriginalPriceMinor: 349900,
		Rating:             4.8,
		Reviews:            124,
		Description:        "Smooth blend with a cool finish.",
		Features:           models.StringList{"5000+ Puffs", "Rechargeable"},
		Specifications:     models.SpecMap{"Battery": "650mAh", "Capacity": "12ml"},
	}
}

func TestCreateProductRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.CreateProduct(ctx, db, sampleProduct("v1"))
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	if created.Currency != "INR" {
		t.Errorf("Expected default currency INR, got %q", created.Currency)
	}
	if created.Price != "₹2,499" || created.OriginalPrice != "₹3,499" {
		t.Errorf("Display prices wrong: %q / %q", created.Price, created.OriginalPrice)
	}
	if created.DiscountPercent != 29 {
		t.Errorf("Expected 29%% discount, got %d", created.DiscountPercent)
	}

	products, err := store.ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("List products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}

	got := products[0]
	if len(got.Features) != 2 || got.Features[0] != "5000+ Puffs" {
		t.Errorf("Features did not round-trip: %v", got.Features)
	}
	if got.Specifications["Battery"] != "650mAh" {
		t.Errorf("Specifications did not round-trip: %v", got.Specifications)
	}
}

func TestUpsertProductIsRerunnable(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.UpsertProduct(ctx, db, sampleProduct("v1")); err != nil {
		t.Fatalf("First upsert: %v", err)
	}

	changed := sampleProduct("v1")
	changed.Title = "MIDNIGHT MIST V2"
	changed.PriceMinor = 199900

	upserted, err := store.UpsertProduct(ctx, db, changed)
	if err != nil {
		t.Fatalf("Second upsert: %v", err)
	}
	if upserted.Title != "MIDNIGHT MIST V2" {
		t.Errorf("Upsert did not refresh title, got %q", upserted.Title)
	}

	products, err := store.ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("List products: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("Upsert should not duplicate rows, got %d", len(products))
	}
}

func TestUpdateProductReplacesAllFields(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.CreateProduct(ctx, db, sampleProduct("h1")); err != nil {
		t.Fatalf("Create product: %v", err)
	}

	replacement := sampleProduct("h1")
	replacement.Title = "CRIMSON CONQUEST"
	replacement.Category = "ROYAL HOOKAH"
	replacement.Features = models.StringList{"Handcrafted"}
	replacement.IsFeatured = true

	updated, err := store.UpdateProduct(ctx, db, "h1", replacement)
	if err != nil {
		t.Fatalf("Update product: %v", err)
	}
	if updated.Title != "CRIMSON CONQUEST" || !updated.IsFeatured {
		t.Errorf("Update did not apply: %+v", updated)
	}
	if len(updated.Features) != 1 {
		t.Errorf("Features should be fully replaced, got %v", updated.Features)
	}

	_, err = store.UpdateProduct(ctx, db, "missing", replacement)
	if err != database.ErrProductNotFound {
		t.Errorf("Expected product not found, got: %v", err)
	}
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.CreateProduct(ctx, db, sampleProduct("v2")); err != nil {
		t.Fatalf("Create product: %v", err)
	}

	if err := store.DeleteProduct(ctx, db, "v2"); err != nil {
		t.Fatalf("First delete: %v", err)
	}
	if err := store.DeleteProduct(ctx, db, "v2"); err != nil {
		t.Fatalf("Second delete should succeed silently: %v", err)
	}

	products, err := store.ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("List products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty catalog, got %d products", len(products))
	}
}
