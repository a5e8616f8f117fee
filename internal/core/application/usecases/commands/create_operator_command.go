package commands

import (
	"errors"
	"time"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrCreateOperatorCommandIsNotConstructed = errors.New(
	"CreateOperatorCommand must be created via NewCreateOperatorCommand constructor",
)

// CreateOperatorCommand registers an Available driver.
type CreateOperatorCommand struct {
	actor             ports.AccessClaims
	firstName         string
	lastName          string
	licenseNumber     string
	licenseExpiryDate time.Time
	phone             *string

	guard guard.ConstructorGuard
}

func NewCreateOperatorCommand(
	actor ports.AccessClaims,
	firstName, lastName, licenseNumber string,
	licenseExpiryDate time.Time,
	phone *string,
) (CreateOperatorCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateOperatorCommand{}, err
	}

	return CreateOperatorCommand{
		actor:             actor,
		firstName:         firstName,
		lastName:          lastName,
		licenseNumber:     licenseNumber,
		licenseExpiryDate: licenseExpiryDate,
		phone:             phone,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

func (c CreateOperatorCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c CreateOperatorCommand) FirstName() string {
	return c.firstName
}

func (c CreateOperatorCommand) LastName() string {
	return c.lastName
}

func (c CreateOperatorCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c CreateOperatorCommand) LicenseExpiryDate() time.Time {
	return c.licenseExpiryDate
}

func (c CreateOperatorCommand) Phone() *string {
	return c.phone
}
