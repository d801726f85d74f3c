package handlers

import (
	"context"

	"github.com/shopzone/checkout/internal/domain/model"
)

// OrderFacade encapsulates payment-order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.ProviderOrder, error)
	PublicKey() string
	Orders(ctx context.Context) ([]model.VerifiedOrder, error)
}

// PaymentFacade verifies provider payment callbacks.
type PaymentFacade interface {
	VerifyPayment(ctx context.Context, claim model.PaymentClaim, customer model.Customer, items []model.LineItem) (*model.VerifiedOrder, bool, error)
}

// CatalogFacade provides product listings.
type CatalogFacade interface {
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
}

// CheckoutFacade aggregates the full set of operations used across handlers.
type CheckoutFacade interface {
	OrderFacade
	PaymentFacade
	CatalogFacade
}

// Pinger reports whether the order log store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
