package commands

import (
	"context"
	"errors"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

// LoginCommandHandler verifies credentials and issues a fresh token pair. The previous
// refresh token of the user stops working.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	clock      ports.Clock
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	clock ports.Clock,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
		clock:      clock,
	}
}

// Handle returns errs.ErrInvalidCredentials for an unknown email as well as for a wrong
// password.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthTokens, error) {
	if err := cmd.Validate(); err != nil {
		return AuthTokens{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthTokens{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.FindByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthTokens{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return AuthTokens{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return AuthTokens{}, err
	}

	tokens, err := issueTokens(h.issuer, u, h.clock.Now())
	if err != nil {
		return AuthTokens{}, err
	}

	if err = users.Update(ctx, u); err != nil {
		return AuthTokens{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthTokens{}, err
	}

	return tokens, nil
}
