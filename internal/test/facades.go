package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopzone/checkout/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, model.OrderRequest) (*model.ProviderOrder, error)
	OrdersFn func(context.Context) ([]model.VerifiedOrder, error)
	Key      string
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.ProviderOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	currency := req.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return &model.ProviderOrder{OrderID: "order_stub", Amount: req.Amount, Currency: currency}, nil
}

// PublicKey returns the configured key or a default value.
func (s OrderFacadeStub) PublicKey() string {
	if s.Key != "" {
		return s.Key
	}
	return "rzp_test_stub"
}

// Orders returns predefined verified orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.VerifiedOrder, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.VerifiedOrder{{OrderID: "order_1", PaymentID: "pay_1", CreatedAt: time.Unix(0, 0)}}, nil
}

// PaymentFacadeStub simulates payment verification outcomes.
type PaymentFacadeStub struct {
	VerifyFn func(context.Context, model.PaymentClaim, model.Customer, []model.LineItem) (*model.VerifiedOrder, bool, error)
}

// VerifyPayment executes the configured verification handler.
func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, claim model.PaymentClaim, customer model.Customer, items []model.LineItem) (*model.VerifiedOrder, bool, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, claim, customer, items)
	}
	return &model.VerifiedOrder{
		OrderID:     claim.OrderID,
		PaymentID:   claim.PaymentID,
		Customer:    customer,
		LineItems:   items,
		TotalAmount: model.TotalOf(items),
	}, true, nil
}

// CatalogFacadeStub returns configurable product listings.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, model.ProductFilter) ([]model.Product, error)
}

// Products delegates to the configured function or returns one product.
func (s CatalogFacadeStub) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "Stub Product", Price: 100, Category: "Stub"}}, nil
}

// PingerStub reports a fixed health check result.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(context.Context) error {
	return s.Err
}

// OrderLogStub records appended orders in memory.
type OrderLogStub struct {
	AppendFn func(context.Context, *model.VerifiedOrder) error
	ListFn   func(context.Context) ([]model.VerifiedOrder, error)

	mu       sync.Mutex
	Appended []model.VerifiedOrder
}

// Append stores the order or delegates to the configured function.
func (s *OrderLogStub) Append(ctx context.Context, order *model.VerifiedOrder) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Appended = append(s.Appended, *order)
	return nil
}

// List returns recorded orders.
func (s *OrderLogStub) List(ctx context.Context) ([]model.VerifiedOrder, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.VerifiedOrder, len(s.Appended))
	copy(result, s.Appended)
	return result, nil
}

// AppendedCount returns the number of recorded orders.
func (s *OrderLogStub) AppendedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Appended)
}
