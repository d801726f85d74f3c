package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/shopzone/checkout/internal/domain/errors"
	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/domain/repository"
	"github.com/shopzone/checkout/internal/pkg/signature"
)

// PaymentUseCase verifies payment claims and records verified orders.
type PaymentUseCase struct {
	verifier *signature.Verifier
	log      repository.OrderLog
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(verifier *signature.Verifier, log repository.OrderLog) *PaymentUseCase {
	return &PaymentUseCase{verifier: verifier, log: log}
}

const missingField = "N/A"

// Verify checks the claim's signature. On success it assembles the verified
// order and appends it to the order log; the order is returned with
// verified=true. A signature mismatch is a negative result, not an error,
// and leaves the order log untouched.
func (u *PaymentUseCase) Verify(ctx context.Context, claim model.PaymentClaim, customer model.Customer, items []model.LineItem) (*model.VerifiedOrder, bool, error) {
	if !claim.Complete() {
		return nil, false, domainErrors.ErrInvalidClaim
	}

	if !u.verifier.Verify(claim) {
		return nil, false, nil
	}

	order := &model.VerifiedOrder{
		OrderID:     claim.OrderID,
		PaymentID:   claim.PaymentID,
		Customer:    fillCustomer(customer),
		LineItems:   items,
		TotalAmount: model.TotalOf(items),
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.log.Append(ctx, order); err != nil {
		return nil, false, fmt.Errorf("%w: record verified order: %v", domainErrors.ErrUpstream, err)
	}

	return order, true, nil
}

func fillCustomer(c model.Customer) model.Customer {
	if c.Name == "" {
		c.Name = missingField
	}
	if c.Email == "" {
		c.Email = missingField
	}
	if c.Phone == "" {
		c.Phone = missingField
	}
	return c
}
