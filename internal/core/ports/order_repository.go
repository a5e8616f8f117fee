package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its identifier.
	// A duplicate order number surfaces as errs.ErrConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	// Used by every status transition so concurrent changes to the same order serialize.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes an order. Its payments are removed with it and notifications
	// about it lose their reference.
	Delete(ctx context.Context, id kernel.ID) error
}
