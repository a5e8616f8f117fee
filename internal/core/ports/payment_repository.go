package ports

import (
	"context"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	Update(ctx context.Context, aggregate *payment.Payment) error

	Get(ctx context.Context, id kernel.ID) (*payment.Payment, error)

	// GetForUpdate retrieves a payment and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*payment.Payment, error)

	// ListByOrder returns every payment of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error)

	// ListPendingCreatedBefore returns at most limit Pending payments created before
	// cutoff, locking them and skipping rows locked by another transaction.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*payment.Payment, error)
}
