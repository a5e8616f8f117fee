package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order that has not been delivered yet.
type CancelOrderCommand struct {
	orderTarget
}

func NewCancelOrderCommand(actor ports.AccessClaims, orderID kernel.ID) (CancelOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderTarget: target}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
