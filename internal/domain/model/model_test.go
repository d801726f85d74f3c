package model

import "testing"

func TestTotalOf(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  int64
	}{
		{name: "empty", items: nil, want: 0},
		{name: "single", items: []LineItem{{UnitPrice: 100, Quantity: 3}}, want: 300},
		{name: "mixed", items: []LineItem{
			{UnitPrice: 100, Quantity: 2},
			{UnitPrice: 50, Quantity: 1},
		}, want: 250},
		{name: "zero quantity", items: []LineItem{{UnitPrice: 100, Quantity: 0}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalOf(tt.items); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPaymentClaimComplete(t *testing.T) {
	tests := []struct {
		name  string
		claim PaymentClaim
		want  bool
	}{
		{name: "full", claim: PaymentClaim{OrderID: "o", PaymentID: "p", Signature: "s"}, want: true},
		{name: "no order", claim: PaymentClaim{PaymentID: "p", Signature: "s"}, want: false},
		{name: "no payment", claim: PaymentClaim{OrderID: "o", Signature: "s"}, want: false},
		{name: "no signature", claim: PaymentClaim{OrderID: "o", PaymentID: "p"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.claim.Complete(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
