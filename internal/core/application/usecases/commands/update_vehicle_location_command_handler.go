package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
)

type UpdateVehicleLocationCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewUpdateVehicleLocationCommandHandler(uowFactory FleetUoWFactory) UpdateVehicleLocationCommandHandler {
	return UpdateVehicleLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the position. The vehicle row is locked so that a concurrent
// assignment is not overwritten with a stale status.
func (h UpdateVehicleLocationCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin, user.Provider); err != nil {
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

	if err = v.SetLocation(cmd.Location()); err != nil {
		return err
	}

	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
