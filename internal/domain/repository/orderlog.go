package repository

import (
	"context"

	"github.com/shopzone/checkout/internal/domain/model"
)

// OrderLog is the durable append-only record of verified orders.
// Implementations must be safe for concurrent appends; entries are
// never updated or deleted.
type OrderLog interface {
	Append(ctx context.Context, order *model.VerifiedOrder) error
	List(ctx context.Context) ([]model.VerifiedOrder, error)
}
