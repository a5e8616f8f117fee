package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

// orderTarget is the caller and order shared by the single-order transition commands.
type orderTarget struct {
	actor   ports.AccessClaims
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func newOrderTarget(actor ports.AccessClaims, orderID kernel.ID) (orderTarget, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return orderTarget{}, err
	}

	return orderTarget{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (t orderTarget) Actor() ports.AccessClaims {
	return t.actor
}

func (t orderTarget) OrderID() kernel.ID {
	return t.orderID
}
