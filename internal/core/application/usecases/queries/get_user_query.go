package queries

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery reads a user profile. Users may read their own profile and
// administrators any profile.
type GetUserQuery struct {
	actor  ports.AccessClaims
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor ports.AccessClaims, userID kernel.ID) (GetUserQuery, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}
