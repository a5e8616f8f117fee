package commands

import (
	"context"
	"errors"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

// RefreshTokenCommandHandler rotates the refresh token: the presented token is replaced
// and cannot be used twice.
type RefreshTokenCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.TokenIssuer
	clock      ports.Clock
}

func NewRefreshTokenCommandHandler(
	uowFactory UserUoWFactory,
	issuer ports.TokenIssuer,
	clock ports.Clock,
) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
		clock:      clock,
	}
}

// Handle returns errs.ErrRefreshTokenRejected for an unknown, rotated or expired token.
func (h RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (AuthTokens, error) {
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
	u, err := users.FindByRefreshToken(ctx, cmd.RefreshToken())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthTokens{}, errs.ErrRefreshTokenRejected
	}
	if err != nil {
		return AuthTokens{}, err
	}

	now := h.clock.Now()
	if err = u.CheckRefreshToken(cmd.RefreshToken(), now); err != nil {
		return AuthTokens{}, err
	}

	tokens, err := issueTokens(h.issuer, u, now)
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
