package inmem

import (
	"context"
	"strings"

	"github.com/shopzone/checkout/internal/domain/model"
)

// Catalog is an in-memory product listing. The storefront sells a fixed
// assortment, so no database sits behind it; the slice is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	products []model.Product
}

// NewCatalog builds catalog over the given products.
func NewCatalog(products []model.Product) *Catalog {
	return &Catalog{products: products}
}

// DefaultProducts returns the storefront assortment. Prices are in paise.
func DefaultProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Apple iPhone 15", Price: 10000000, Category: "Mobiles", Discount: "10% OFF"},
		{ID: 2, Name: "Samsung Galaxy S23", Price: 10000000, Category: "Mobiles"},
		{ID: 3, Name: "Sony Headphones", Price: 499900, Category: "Accessories"},
		{ID: 4, Name: "Dell Laptop", Price: 7500000, Category: "Laptops"},
		{ID: 5, Name: "Nike Sneakers", Price: 700000, Category: "Footwear"},
		{ID: 6, Name: "MacBook Pro", Price: 15000000, Category: "Laptops"},
		{ID: 7, Name: "Bose Headphones", Price: 1200000, Category: "Accessories"},
		{ID: 8, Name: "Adidas Running Shoes", Price: 650000, Category: "Footwear"},
		{ID: 9, Name: "Samsung 4K TV", Price: 8000000, Category: "Electronics", Discount: "5% OFF"},
		{ID: 10, Name: "Canon DSLR Camera", Price: 5500000, Category: "Electronics"},
	}
}

// List returns products matching the filter. Category matches exactly,
// search matches a case-insensitive substring of the name.
func (c *Catalog) List(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	search := strings.ToLower(filter.Search)

	result := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}
