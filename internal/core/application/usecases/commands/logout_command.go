package commands

import (
	"errors"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand revokes the refresh token of the caller. Access tokens already issued
// stay valid until they expire.
type LogoutCommand struct {
	actor ports.AccessClaims

	guard guard.ConstructorGuard
}

func NewLogoutCommand(actor ports.AccessClaims) (LogoutCommand, error) {
	if err := actor.Validate(); err != nil {
		return LogoutCommand{}, err
	}

	return LogoutCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Actor() ports.AccessClaims {
	return c.actor
}
