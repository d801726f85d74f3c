package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shopzone/checkout/internal/domain/model"
)

// Verifier checks provider payment signatures using HMAC-SHA256.
// The provider signs orderID + "|" + paymentID with the shared secret
// and renders the MAC as lowercase hex.
type Verifier struct {
	secret []byte
}

// NewVerifier builds Verifier with the provider's shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign computes the expected signature for an (order, payment) pair.
func (v *Verifier) Sign(orderID, paymentID string) string {
	return hex.EncodeToString(v.mac(orderID, paymentID))
}

// Verify reports whether the claim's signature is authentic. The submitted
// signature is decoded and compared against the recomputed MAC in constant
// time.
func (v *Verifier) Verify(claim model.PaymentClaim) bool {
	submitted, err := hex.DecodeString(strings.ToLower(claim.Signature))
	if err != nil {
		return false
	}
	return hmac.Equal(v.mac(claim.OrderID, claim.PaymentID), submitted)
}

func (v *Verifier) mac(orderID, paymentID string) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return mac.Sum(nil)
}
