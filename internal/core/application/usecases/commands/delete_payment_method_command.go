package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrDeletePaymentMethodCommandIsNotConstructed = errors.New(
	"DeletePaymentMethodCommand must be created via NewDeletePaymentMethodCommand constructor",
)

// DeletePaymentMethodCommand removes a stored card that no payment references.
type DeletePaymentMethodCommand struct {
	actor           ports.AccessClaims
	paymentMethodID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeletePaymentMethodCommand(actor ports.AccessClaims, paymentMethodID kernel.ID) (DeletePaymentMethodCommand, error) {
	if err := errors.Join(actor.Validate(), paymentMethodID.Validate()); err != nil {
		return DeletePaymentMethodCommand{}, err
	}

	return DeletePaymentMethodCommand{
		actor:           actor,
		paymentMethodID: paymentMethodID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c DeletePaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentMethodCommandIsNotConstructed)
}

func (c DeletePaymentMethodCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c DeletePaymentMethodCommand) PaymentMethodID() kernel.ID {
	return c.paymentMethodID
}
