package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
)

type DeleteOperatorCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewDeleteOperatorCommandHandler(uowFactory FleetUoWFactory) DeleteOperatorCommandHandler {
	return DeleteOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteOperatorCommandHandler) Handle(ctx context.Context, cmd DeleteOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OperatorRepository().Delete(ctx, cmd.OperatorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
