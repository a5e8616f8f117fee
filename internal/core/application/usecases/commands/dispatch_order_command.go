package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand sends a Confirmed order on its way.
type DispatchOrderCommand struct {
	orderTarget
}

func NewDispatchOrderCommand(actor ports.AccessClaims, orderID kernel.ID) (DispatchOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return DispatchOrderCommand{}, err
	}
	return DispatchOrderCommand{orderTarget: target}, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}
