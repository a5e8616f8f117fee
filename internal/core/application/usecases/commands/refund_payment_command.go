package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand refunds a Completed payment.
type RefundPaymentCommand struct {
	paymentTarget
}

func NewRefundPaymentCommand(actor ports.AccessClaims, paymentID kernel.ID) (RefundPaymentCommand, error) {
	target, err := newPaymentTarget(actor, paymentID)
	if err != nil {
		return RefundPaymentCommand{}, err
	}
	return RefundPaymentCommand{paymentTarget: target}, nil
}

func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}
