package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle. A duplicate license plate surfaces as errs.ErrConflict.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and locks its row until the transaction ends.
	// Two assignments racing for the same vehicle serialize on this lock, and the
	// second one observes it InUse.
	GetForUpdate(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// Delete removes a vehicle. Orders that referenced it keep existing without a vehicle.
	Delete(ctx context.Context, id kernel.ID) error
}
