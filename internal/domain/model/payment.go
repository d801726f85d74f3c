package model

// PaymentClaim is what the client reports after the provider's hosted checkout
// completed. All fields are untrusted until the signature is verified.
type PaymentClaim struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Complete reports whether all fields required for verification are present.
func (c PaymentClaim) Complete() bool {
	return c.OrderID != "" && c.PaymentID != "" && c.Signature != ""
}
