package repository

import (
	"context"

	"github.com/shopzone/checkout/internal/domain/model"
)

// Catalog provides read access to the product listing.
type Catalog interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
}
