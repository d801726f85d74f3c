package model

import "time"

// OrderRequest describes a checkout attempt before the provider is involved.
// Amount is in the minor currency unit (paise for INR).
type OrderRequest struct {
	Amount   int64
	Currency string
}

// DefaultCurrency is applied when a request carries no currency code.
const DefaultCurrency = "INR"

// ProviderOrder is the payment order issued by the provider. Immutable once created.
type ProviderOrder struct {
	OrderID  string
	Amount   int64
	Currency string
	Receipt  string
}

// LineItem is a single purchased position of a verified order.
type LineItem struct {
	ProductRef string
	UnitPrice  int64
	Quantity   int64
}

// Customer holds contact details collected at checkout.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// VerifiedOrder is created only after the payment signature checked out.
// It is append-only: once written to the order log it is never mutated.
type VerifiedOrder struct {
	ID          string
	OrderID     string
	PaymentID   string
	Customer    Customer
	LineItems   []LineItem
	TotalAmount int64
	CreatedAt   time.Time
}

// TotalOf sums unit price times quantity over all line items.
func TotalOf(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}
