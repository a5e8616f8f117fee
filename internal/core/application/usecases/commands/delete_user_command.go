package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes a user together with its payment methods and notifications.
// It is refused while the user still has orders.
type DeleteUserCommand struct {
	actor  ports.AccessClaims
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actor ports.AccessClaims, userID kernel.ID) (DeleteUserCommand, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c DeleteUserCommand) UserID() kernel.ID {
	return c.userID
}
