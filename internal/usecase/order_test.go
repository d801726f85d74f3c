package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/shopzone/checkout/internal/domain/errors"
	"github.com/shopzone/checkout/internal/domain/model"
)

type stubProvider struct {
	createFn func(context.Context, model.OrderRequest, string) (*model.ProviderOrder, error)
}

func (s stubProvider) CreateOrder(ctx context.Context, req model.OrderRequest, receipt string) (*model.ProviderOrder, error) {
	return s.createFn(ctx, req, receipt)
}

func TestOrderCreateRejectsNonPositiveAmount(t *testing.T) {
	uc := NewOrderUseCase(stubProvider{createFn: func(context.Context, model.OrderRequest, string) (*model.ProviderOrder, error) {
		t.Fatal("provider must not be called for invalid amount")
		return nil, nil
	}})

	for _, amount := range []int64{0, -1, -100000} {
		if _, err := uc.Create(context.Background(), model.OrderRequest{Amount: amount}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
			t.Fatalf("expected invalid amount error for %d, got %v", amount, err)
		}
	}
}

func TestOrderCreateDefaultsCurrency(t *testing.T) {
	uc := NewOrderUseCase(stubProvider{createFn: func(_ context.Context, req model.OrderRequest, _ string) (*model.ProviderOrder, error) {
		if req.Currency != "INR" {
			t.Fatalf("expected currency to default to INR, got %q", req.Currency)
		}
		return &model.ProviderOrder{OrderID: "order_1", Amount: req.Amount, Currency: req.Currency}, nil
	}})

	order, err := uc.Create(context.Background(), model.OrderRequest{Amount: 25000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Currency != "INR" {
		t.Fatalf("unexpected currency %q", order.Currency)
	}
	if order.Amount != 25000 {
		t.Fatalf("unexpected amount %d", order.Amount)
	}
}

func TestOrderCreateKeepsExplicitCurrency(t *testing.T) {
	uc := NewOrderUseCase(stubProvider{createFn: func(_ context.Context, req model.OrderRequest, _ string) (*model.ProviderOrder, error) {
		return &model.ProviderOrder{OrderID: "order_1", Amount: req.Amount, Currency: req.Currency}, nil
	}})

	order, err := uc.Create(context.Background(), model.OrderRequest{Amount: 100, Currency: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Currency != "USD" {
		t.Fatalf("expected explicit currency to survive, got %q", order.Currency)
	}
}

func TestOrderCreateUsesFreshReceipts(t *testing.T) {
	var receipts []string
	uc := NewOrderUseCase(stubProvider{createFn: func(_ context.Context, req model.OrderRequest, receipt string) (*model.ProviderOrder, error) {
		receipts = append(receipts, receipt)
		return &model.ProviderOrder{OrderID: "order_1", Amount: req.Amount, Currency: req.Currency, Receipt: receipt}, nil
	}})

	for i := 0; i < 2; i++ {
		if _, err := uc.Create(context.Background(), model.OrderRequest{Amount: 100}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(receipts) != 2 {
		t.Fatalf("expected two provider calls, got %d", len(receipts))
	}
	if receipts[0] == "" || receipts[0] == receipts[1] {
		t.Fatalf("expected distinct non-empty receipts, got %q and %q", receipts[0], receipts[1])
	}
}

func TestOrderCreateWrapsProviderFailure(t *testing.T) {
	uc := NewOrderUseCase(stubProvider{createFn: func(context.Context, model.OrderRequest, string) (*model.ProviderOrder, error) {
		return nil, errors.New("connection refused")
	}})

	_, err := uc.Create(context.Background(), model.OrderRequest{Amount: 100})
	if !errors.Is(err, domainErrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
