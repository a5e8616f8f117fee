package commands

import (
	"context"
)

type LogoutCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewLogoutCommandHandler(uowFactory UserUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.Actor().UserID)
	if err != nil {
		return err
	}

	u.RevokeRefreshToken()

	if err = users.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
