package app

import (
	"context"

	"github.com/shopzone/checkout/internal/config"
	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/domain/repository"
	"github.com/shopzone/checkout/internal/usecase"
)

// CheckoutFacade aggregates the checkout operations exposed over HTTP.
type CheckoutFacade struct {
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
	catalog  *usecase.CatalogUseCase
	log      repository.OrderLog
	keyID    string
}

// NewCheckoutFacade constructs the facade.
func NewCheckoutFacade(orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase, catalog *usecase.CatalogUseCase, log repository.OrderLog, cfg *config.Config) *CheckoutFacade {
	return &CheckoutFacade{
		orders:   orders,
		payments: payments,
		catalog:  catalog,
		log:      log,
		keyID:    cfg.ProviderKeyID,
	}
}

// CreateOrder registers a payment order with the provider.
func (f *CheckoutFacade) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.ProviderOrder, error) {
	return f.orders.Create(ctx, req)
}

// PublicKey returns the provider key identifier the client checkout needs.
func (f *CheckoutFacade) PublicKey() string {
	return f.keyID
}

// VerifyPayment checks a payment claim and records the order when authentic.
func (f *CheckoutFacade) VerifyPayment(ctx context.Context, claim model.PaymentClaim, customer model.Customer, items []model.LineItem) (*model.VerifiedOrder, bool, error) {
	return f.payments.Verify(ctx, claim, customer, items)
}

// Products lists catalog entries matching the filter.
func (f *CheckoutFacade) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return f.catalog.List(ctx, filter)
}

// Orders returns previously verified orders, newest first.
func (f *CheckoutFacade) Orders(ctx context.Context) ([]model.VerifiedOrder, error) {
	return f.log.List(ctx)
}
