package commands

import (
	"context"
	"errors"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"
)

type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the user. Only administrators may delete users, and not themselves.
// Returns errs.ErrDependencyExists while orders reference the user.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
		return err
	}

	if cmd.Actor().UserID == cmd.UserID() {
		return errs.NewValueIsInvalidErrorWithCause("user", errors.New("administrators cannot delete their own account"))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
