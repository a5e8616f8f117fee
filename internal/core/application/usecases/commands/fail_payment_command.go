package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrFailPaymentCommandIsNotConstructed = errors.New(
	"FailPaymentCommand must be created via NewFailPaymentCommand constructor",
)

// FailPaymentCommand records a declined charge.
type FailPaymentCommand struct {
	paymentTarget
}

func NewFailPaymentCommand(actor ports.AccessClaims, paymentID kernel.ID) (FailPaymentCommand, error) {
	target, err := newPaymentTarget(actor, paymentID)
	if err != nil {
		return FailPaymentCommand{}, err
	}
	return FailPaymentCommand{paymentTarget: target}, nil
}

func (c FailPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFailPaymentCommandIsNotConstructed)
}
