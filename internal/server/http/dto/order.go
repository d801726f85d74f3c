package dto

// CreateOrderRequest describes the checkout order creation payload.
// Amount is in the minor currency unit.
type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrderResponse carries the provider order plus the public key the
// client needs to open the hosted checkout.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Key      string `json:"key"`
}

// ErrorResponse is the structured error body for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
