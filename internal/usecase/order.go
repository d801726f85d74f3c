package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/shopzone/checkout/internal/domain/errors"
	"github.com/shopzone/checkout/internal/domain/model"
)

// OrderProvider creates payment orders with the external provider.
type OrderProvider interface {
	CreateOrder(ctx context.Context, req model.OrderRequest, receipt string) (*model.ProviderOrder, error)
}

// OrderUseCase encapsulates payment-order creation.
type OrderUseCase struct {
	provider OrderProvider
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(provider OrderProvider) *OrderUseCase {
	return &OrderUseCase{provider: provider}
}

// Create validates the request and registers a payment order with the
// provider. The request is rejected before any network call when the amount
// is not positive. Each attempt carries a fresh receipt token so a retried
// checkout cannot create a duplicate order.
func (u *OrderUseCase) Create(ctx context.Context, req model.OrderRequest) (*model.ProviderOrder, error) {
	if req.Amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if req.Currency == "" {
		req.Currency = model.DefaultCurrency
	}

	receipt := "order_rcptid_" + uuid.NewString()

	order, err := u.provider.CreateOrder(ctx, req, receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: create provider order: %v", domainErrors.ErrUpstream, err)
	}
	return order, nil
}
