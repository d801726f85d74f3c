package dto

import "time"

// LineItemPayload is one purchased position reported at verification time.
type LineItemPayload struct {
	ProductRef string `json:"productRef"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int64  `json:"quantity"`
}

// CustomerPayload holds optional customer contact details.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// VerifyPaymentRequest is the callback payload the client relays after the
// provider's hosted flow completes.
type VerifyPaymentRequest struct {
	OrderID   string            `json:"orderId"`
	PaymentID string            `json:"paymentId"`
	Signature string            `json:"signature"`
	LineItems []LineItemPayload `json:"lineItems"`
	Customer  *CustomerPayload  `json:"customer,omitempty"`
}

// VerifiedOrderResponse describes a recorded order.
type VerifiedOrderResponse struct {
	OrderID     string            `json:"orderId"`
	PaymentID   string            `json:"paymentId"`
	Customer    CustomerPayload   `json:"customer"`
	LineItems   []LineItemPayload `json:"lineItems"`
	TotalAmount int64             `json:"totalAmount"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// VerifyPaymentResponse reports the verification outcome. Order is present
// only when the payment was verified.
type VerifyPaymentResponse struct {
	Verified bool                   `json:"verified"`
	Order    *VerifiedOrderResponse `json:"order,omitempty"`
}
