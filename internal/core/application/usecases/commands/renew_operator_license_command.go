package commands

import (
	"errors"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrRenewOperatorLicenseCommandIsNotConstructed = errors.New(
	"RenewOperatorLicenseCommand must be created via NewRenewOperatorLicenseCommand constructor",
)

// RenewOperatorLicenseCommand records a new license expiry date for an operator.
type RenewOperatorLicenseCommand struct {
	actor      ports.AccessClaims
	operatorID kernel.ID
	expiryDate time.Time

	guard guard.ConstructorGuard
}

func NewRenewOperatorLicenseCommand(
	actor ports.AccessClaims,
	operatorID kernel.ID,
	expiryDate time.Time,
) (RenewOperatorLicenseCommand, error) {
	if err := errors.Join(actor.Validate(), operatorID.Validate()); err != nil {
		return RenewOperatorLicenseCommand{}, err
	}

	return RenewOperatorLicenseCommand{
		actor:      actor,
		operatorID: operatorID,
		expiryDate: expiryDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RenewOperatorLicenseCommand) Validate() error {
	return c.guard.Validate(ErrRenewOperatorLicenseCommandIsNotConstructed)
}

func (c RenewOperatorLicenseCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c RenewOperatorLicenseCommand) OperatorID() kernel.ID {
	return c.operatorID
}

func (c RenewOperatorLicenseCommand) ExpiryDate() time.Time {
	return c.expiryDate
}
