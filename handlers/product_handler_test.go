package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"shop_backend/config"
	"shop_backend/models"
)

func TestGetAllProducts(t *testing.T) {
	app, db := setupTestApp(t)

	t.Run("empty catalog", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/products/", nil, "")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if env.Total == nil || *env.Total != 0 {
			t.Errorf("total = %v, want 0", env.Total)
		}
	})

	if err := config.SeedProducts(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("seeded catalog", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/products/", nil, "")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if env.Total == nil || *env.Total != 6 {
			t.Fatalf("total = %v, want 6", env.Total)
		}

		var products []models.Product
		if err := json.Unmarshal(env.Data, &products); err != nil {
			t.Fatalf("failed to decode products: %v", err)
		}

		found := false
		for _, p := range products {
			if p.Name == "Smartphone Galaxy S24" {
				found = true
				if p.Price != 2999.99 {
					t.Errorf("Galaxy S24 price = %v, want 2999.99", p.Price)
				}
			}
		}
		if !found {
			t.Error("baseline catalog is missing Smartphone Galaxy S24")
		}
	})
}

func TestGetProduct(t *testing.T) {
	app, db := setupTestApp(t)
	if err := config.SeedProducts(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("existing product", func(t *testing.T) {
		var first models.Product
		if err := db.First(&first).Error; err != nil {
			t.Fatalf("failed to load seeded product: %v", err)
		}

		status, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", first.ID), nil, "")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}

		var product models.Product
		if err := json.Unmarshal(env.Data, &product); err != nil {
			t.Fatalf("failed to decode product: %v", err)
		}
		if product.ID != first.ID || product.Name != first.Name {
			t.Errorf("got product (%d, %q), want (%d, %q)", product.ID, product.Name, first.ID, first.Name)
		}
	})

	t.Run("nonexistent product", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/products/99999", nil, "")
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want 404", status)
		}
		if env.Success {
			t.Error("expected success=false")
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/products/not-a-number", nil, "")
		if status != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", status)
		}
	})
}
