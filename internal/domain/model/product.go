package model

// Product is a catalog entry. Price is in the minor currency unit.
type Product struct {
	ID       int64
	Name     string
	Price    int64
	Category string
	Discount string
}

// ProductFilter narrows catalog listings. Category matches exactly,
// Search matches a case-insensitive substring of the product name.
type ProductFilter struct {
	Category string
	Search   string
}
