package ports

import (
	"context"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for operator aggregates.
type OperatorRepository interface {
	// Add persists a new operator. A duplicate license number surfaces as errs.ErrConflict.
	Add(ctx context.Context, aggregate *operator.Operator) error

	Update(ctx context.Context, aggregate *operator.Operator) error

	Get(ctx context.Context, id kernel.ID) (*operator.Operator, error)

	// GetForUpdate retrieves an operator and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*operator.Operator, error)

	// ListAvailableWithExpiredLicense returns, locked, the Available operators whose
	// license expired at or before now.
	ListAvailableWithExpiredLicense(ctx context.Context, now time.Time) ([]*operator.Operator, error)

	// Delete removes an operator. Orders that referenced it keep existing without an operator.
	Delete(ctx context.Context, id kernel.ID) error
}
