package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
)

type ChangeOperatorStatusCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewChangeOperatorStatusCommandHandler(uowFactory FleetUoWFactory) ChangeOperatorStatusCommandHandler {
	return ChangeOperatorStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies Available ⇄ OffDuty. An operator OnDelivery is only freed by its order.
func (h ChangeOperatorStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOperatorStatusCommand) error {
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

	repo := uow.OperatorRepository()
	op, err := repo.GetForUpdate(ctx, cmd.OperatorID())
	if err != nil {
		return err
	}

	if err = op.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, op); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
