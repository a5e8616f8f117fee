package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand confirms the delivery of an order in transit.
type DeliverOrderCommand struct {
	orderTarget
}

func NewDeliverOrderCommand(actor ports.AccessClaims, orderID kernel.ID) (DeliverOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{orderTarget: target}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}
