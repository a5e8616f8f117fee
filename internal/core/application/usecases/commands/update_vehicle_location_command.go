package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrUpdateVehicleLocationCommandIsNotConstructed = errors.New(
	"UpdateVehicleLocationCommand must be created via NewUpdateVehicleLocationCommand constructor",
)

// UpdateVehicleLocationCommand records the last known position of a vehicle.
// A nil location clears it.
type UpdateVehicleLocationCommand struct {
	actor     ports.AccessClaims
	vehicleID kernel.ID
	location  *kernel.Coordinates

	guard guard.ConstructorGuard
}

func NewUpdateVehicleLocationCommand(
	actor ports.AccessClaims,
	vehicleID kernel.ID,
	location *kernel.Coordinates,
) (UpdateVehicleLocationCommand, error) {
	if err := errors.Join(actor.Validate(), vehicleID.Validate()); err != nil {
		return UpdateVehicleLocationCommand{}, err
	}

	return UpdateVehicleLocationCommand{
		actor:     actor,
		vehicleID: vehicleID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVehicleLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleLocationCommandIsNotConstructed)
}

func (c UpdateVehicleLocationCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c UpdateVehicleLocationCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

func (c UpdateVehicleLocationCommand) Location() *kernel.Coordinates {
	return c.location
}
