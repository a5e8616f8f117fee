package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand applies an administrative status change, such as sending
// a vehicle to maintenance or taking it out of service.
type ChangeVehicleStatusCommand struct {
	actor     ports.AccessClaims
	vehicleID kernel.ID
	status    vehicle.Status

	guard guard.ConstructorGuard
}

func NewChangeVehicleStatusCommand(
	actor ports.AccessClaims,
	vehicleID kernel.ID,
	status vehicle.Status,
) (ChangeVehicleStatusCommand, error) {
	if err := errors.Join(actor.Validate(), vehicleID.Validate(), status.Validate()); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return ChangeVehicleStatusCommand{
		actor:     actor,
		vehicleID: vehicleID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

func (c ChangeVehicleStatusCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c ChangeVehicleStatusCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

func (c ChangeVehicleStatusCommand) Status() vehicle.Status {
	return c.status
}
