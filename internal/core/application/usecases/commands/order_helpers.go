package commands

import (
	"context"
	"errors"

	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

// store adds a notification built by a services.Notifier method to the current transaction.
func store(ctx context.Context, repo ports.NotificationRepository, n *notification.Notification, err error) error {
	if err != nil {
		return err
	}
	return repo.Add(ctx, n)
}

// releaseResources locks the vehicle and operator still referenced by the terminal
// order o and returns them to Available. A resource deleted in the meantime is skipped.
func releaseResources(ctx context.Context, uow OrderUoW, dispatcher services.OrderDispatcher, o *order.Order) error {
	var (
		v  *vehicle.Vehicle
		op *operator.Operator
	)

	if id := o.VehicleID(); id != nil {
		found, err := uow.VehicleRepository().GetForUpdate(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		v = found
	}

	if id := o.OperatorID(); id != nil {
		found, err := uow.OperatorRepository().GetForUpdate(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		op = found
	}

	if err := dispatcher.Release(o, v, op); err != nil {
		return err
	}

	if v != nil {
		if err := uow.VehicleRepository().Update(ctx, v); err != nil {
			return err
		}
	}

	if op != nil {
		if err := uow.OperatorRepository().Update(ctx, op); err != nil {
			return err
		}
	}

	return nil
}
