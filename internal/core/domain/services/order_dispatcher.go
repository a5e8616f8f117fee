package services

import (
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/pkg/errs"
)

// OrderDispatcher is a domain service that moves vehicles and operators in and out of
// orders.
//
// Business rules:
//   - Only a Pending order can be assigned
//   - The vehicle must be Available and able to carry the ordered quantity
//   - The operator must be Available and hold an unexpired license
//   - Assignment occupies both resources and confirms the order as one step: if any
//     check fails, none of the three aggregates is modified
//   - Once the order is Delivered or Cancelled, the resources it still holds are
//     returned to Available
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.Assign(o, v, op, time.Now()); err != nil {
//	    // errs.ErrResourceUnavailable, errs.ErrInvalidTransition, ...
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Assign confirms o with vehicle v and operator op.
//
// Returns:
//   - errs.ErrInvalidTransition if the order is not Pending
//   - errs.ErrResourceUnavailable if the vehicle or operator cannot take the order
func (d OrderDispatcher) Assign(o *order.Order, v *vehicle.Vehicle, op *operator.Operator, now time.Time) error {
	if err := errors.Join(o.Validate(), v.Validate(), op.Validate()); err != nil {
		return err
	}

	if !o.Status().CanTransitionTo(order.Confirmed) {
		return errs.NewInvalidTransitionError("order", o.Status(), order.Confirmed)
	}

	if !v.CanCarry(o.Quantity()) {
		return errs.NewResourceUnavailableError("vehicle", v.ID(),
			fmt.Sprintf("too small: capacity %s is below the ordered %s", v.Capacity(), o.Quantity()))
	}

	if err := v.Occupy(); err != nil {
		return err
	}

	if err := op.Occupy(now); err != nil {
		_ = v.Release()
		return err
	}

	if err := o.Confirm(v.ID(), op.ID()); err != nil {
		_ = v.Release()
		_ = op.Release()
		return err
	}

	return nil
}

// Release returns the vehicle and operator held by a Delivered or Cancelled order to
// Available. Either resource may be nil when it was deleted after the assignment, and a
// resource that is no longer busy is left as it is.
func (d OrderDispatcher) Release(o *order.Order, v *vehicle.Vehicle, op *operator.Operator) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.Status().IsTerminal() {
		return fmt.Errorf("release resources of order %s: %w", o.Number(),
			errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%s is not terminal", o.Status())))
	}

	if v != nil && v.Status() == vehicle.InUse {
		if err := v.Release(); err != nil {
			return err
		}
	}

	if op != nil && op.Status() == operator.OnDelivery {
		if err := op.Release(); err != nil {
			return err
		}
	}

	return nil
}
