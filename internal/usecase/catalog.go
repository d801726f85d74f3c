package usecase

import (
	"context"

	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/domain/repository"
)

// CatalogUseCase exposes product listings.
type CatalogUseCase struct {
	catalog repository.Catalog
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.Catalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns products matching the filter.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return u.catalog.List(ctx, filter)
}
