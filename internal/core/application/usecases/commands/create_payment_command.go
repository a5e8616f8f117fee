package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand records a Pending payment of amount on an order, charged to one
// of the owner's payment methods.
type CreatePaymentCommand struct {
	actor           ports.AccessClaims
	orderID         kernel.ID
	paymentMethodID kernel.ID
	amount          kernel.Amount

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(
	actor ports.AccessClaims,
	orderID, paymentMethodID kernel.ID,
	amount kernel.Amount,
) (CreatePaymentCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		paymentMethodID.Validate(),
		amount.Validate(),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		actor:           actor,
		orderID:         orderID,
		paymentMethodID: paymentMethodID,
		amount:          amount,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c CreatePaymentCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreatePaymentCommand) PaymentMethodID() kernel.ID {
	return c.paymentMethodID
}

func (c CreatePaymentCommand) Amount() kernel.Amount {
	return c.amount
}
