package dto

// ProductResponse is a catalog entry. Price is in the minor currency unit.
type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Discount string `json:"discount,omitempty"`
}
