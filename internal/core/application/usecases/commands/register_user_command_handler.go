package commands

import (
	"context"
	"fmt"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

// RegisterUserCommandHandler stores a new user with a hashed password.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the identifier of the new user. A taken email surfaces as errs.ErrConflict.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.Role() != user.Client {
		if cmd.Actor() == nil {
			return 0, fmt.Errorf("%w: only an administrator may register a %s", errs.ErrForbidden, cmd.Role())
		}
		if err := cmd.Actor().Require(user.Admin); err != nil {
			return 0, err
		}
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.FirstName(), cmd.LastName(), cmd.Email(), hash, cmd.Phone(), cmd.Role())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return u.ID(), nil
}
