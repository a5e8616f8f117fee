package commands

import (
	"errors"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand assigns a vehicle and an operator to a Pending order, which
// confirms it.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(actor, orderID, vehicleID, operatorID, nil)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrResourceUnavailable):
//	    // vehicle or operator busy, too small or unlicensed
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not Pending
//	}
type AssignOrderCommand struct {
	actor                 ports.AccessClaims
	orderID               kernel.ID
	vehicleID             kernel.ID
	operatorID            kernel.ID
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(
	actor ports.AccessClaims,
	orderID, vehicleID, operatorID kernel.ID,
	estimatedDeliveryTime *time.Time,
) (AssignOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		vehicleID.Validate(),
		operatorID.Validate(),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		actor:                 actor,
		orderID:               orderID,
		vehicleID:             vehicleID,
		operatorID:            operatorID,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c AssignOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AssignOrderCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

func (c AssignOrderCommand) OperatorID() kernel.ID {
	return c.operatorID
}

func (c AssignOrderCommand) EstimatedDeliveryTime() *time.Time {
	return c.estimatedDeliveryTime
}
