package usecase

import (
	"context"
	"testing"

	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/storage/inmem"
)

func TestCatalogListPassesFilterThrough(t *testing.T) {
	uc := NewCatalogUseCase(inmem.NewCatalog(inmem.DefaultProducts()))

	products, err := uc.List(context.Background(), model.ProductFilter{Category: "Laptops"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 laptops, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "Laptops" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}
