package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
)

type ChangeVehicleStatusCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewChangeVehicleStatusCommandHandler(uowFactory FleetUoWFactory) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the status of a locked vehicle. InUse can neither be entered nor left
// this way.
func (h ChangeVehicleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStatusCommand) error {
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

	repo := uow.VehicleRepository()
	v, err := repo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = v.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
