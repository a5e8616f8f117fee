package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand removes a vehicle. Orders that referenced it lose the reference.
type DeleteVehicleCommand struct {
	actor     ports.AccessClaims
	vehicleID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(actor ports.AccessClaims, vehicleID kernel.ID) (DeleteVehicleCommand, error) {
	if err := errors.Join(actor.Validate(), vehicleID.Validate()); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return DeleteVehicleCommand{
		actor:     actor,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c DeleteVehicleCommand) VehicleID() kernel.ID {
	return c.vehicleID
}
