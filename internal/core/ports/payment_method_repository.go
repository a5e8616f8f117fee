package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/paymentmethod"
)

// PaymentMethodRepository defines the persistence contract for payment method aggregates.
type PaymentMethodRepository interface {
	Add(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error

	Update(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error

	Get(ctx context.Context, id kernel.ID) (*paymentmethod.PaymentMethod, error)

	// ListByUser returns the payment methods of a user, default first.
	ListByUser(ctx context.Context, userID kernel.ID) ([]*paymentmethod.PaymentMethod, error)

	// Delete removes a payment method. Returns errs.ErrDependencyExists while payments
	// reference it.
	Delete(ctx context.Context, id kernel.ID) error
}
