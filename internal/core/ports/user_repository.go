package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as errs.ErrConflict.
	Add(ctx context.Context, aggregate *user.User) error

	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// FindByEmail looks a user up by normalized email, or returns errs.ErrObjectNotFound.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByRefreshToken looks up the user whose active refresh token is token and
	// locks the row until the transaction ends.
	FindByRefreshToken(ctx context.Context, token string) (*user.User, error)

	// ListIDsByRole returns the identifiers of every user with role, ordered by id.
	ListIDsByRole(ctx context.Context, role user.Role) ([]kernel.ID, error)

	// Delete removes a user together with its payment methods and notifications.
	// Returns errs.ErrDependencyExists while any order references the user.
	Delete(ctx context.Context, id kernel.ID) error
}
