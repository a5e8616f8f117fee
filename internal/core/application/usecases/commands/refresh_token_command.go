package commands

import (
	"errors"
	"strings"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand trades a refresh token for a new token pair.
type RefreshTokenCommand struct {
	refreshToken string

	guard guard.ConstructorGuard
}

func NewRefreshTokenCommand(refreshToken string) (RefreshTokenCommand, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return RefreshTokenCommand{}, errs.NewValueIsRequiredError("refresh token")
	}

	return RefreshTokenCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) RefreshToken() string {
	return c.refreshToken
}
