package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"
)

type CreateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory FleetUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identifier of the new vehicle. A taken license plate surfaces as
// errs.ErrConflict.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
		return 0, err
	}

	v, err := vehicle.NewVehicle(cmd.LicensePlate(), cmd.Brand(), cmd.Model(), cmd.Year(), cmd.Capacity())
	if err != nil {
		return 0, err
	}

	if err = v.SetLocation(cmd.Location()); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return v.ID(), nil
}
