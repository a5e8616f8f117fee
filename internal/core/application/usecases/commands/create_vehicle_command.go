package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers an Available tanker truck.
type CreateVehicleCommand struct {
	actor        ports.AccessClaims
	licensePlate string
	brand        string
	model        string
	year         int
	capacity     kernel.Amount
	location     *kernel.Coordinates

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	actor ports.AccessClaims,
	licensePlate, brand, model string,
	year int,
	capacity kernel.Amount,
	location *kernel.Coordinates,
) (CreateVehicleCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		actor:        actor,
		licensePlate: licensePlate,
		brand:        brand,
		model:        model,
		year:         year,
		capacity:     capacity,
		location:     location,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c CreateVehicleCommand) LicensePlate() string {
	return c.licensePlate
}

func (c CreateVehicleCommand) Brand() string {
	return c.brand
}

func (c CreateVehicleCommand) Model() string {
	return c.model
}

func (c CreateVehicleCommand) Year() int {
	return c.year
}

func (c CreateVehicleCommand) Capacity() kernel.Amount {
	return c.capacity
}

func (c CreateVehicleCommand) Location() *kernel.Coordinates {
	return c.location
}
