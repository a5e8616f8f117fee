package commands

import (
	"errors"

	"fueltrack/internal/pkg/guard"
)

var ErrExpireOperatorLicensesCommandIsNotConstructed = errors.New(
	"ExpireOperatorLicensesCommand must be created via NewExpireOperatorLicensesCommand constructor",
)

// ExpireOperatorLicensesCommand takes Available operators with an expired license off
// duty. It is issued by the scheduler.
type ExpireOperatorLicensesCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireOperatorLicensesCommand() ExpireOperatorLicensesCommand {
	return ExpireOperatorLicensesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ExpireOperatorLicensesCommand) Validate() error {
	return c.guard.Validate(ErrExpireOperatorLicensesCommandIsNotConstructed)
}
