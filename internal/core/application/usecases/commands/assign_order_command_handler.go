package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

// AssignOrderCommandHandler orchestrates the assignment of delivery resources.
// The order, vehicle and operator rows are locked in that order for the whole
// transaction, so two requests racing for the same vehicle or operator serialize and
// the second one sees it busy.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	notifier   services.Notifier
	clock      ports.Clock
}

func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle processes the assignment. Either all three aggregates change or none does.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin, user.Provider); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()
	operatorRepo := uow.OperatorRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	v, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	op, err := operatorRepo.GetForUpdate(ctx, cmd.OperatorID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(o, v, op, h.clock.Now()); err != nil {
		return err
	}

	if eta := cmd.EstimatedDeliveryTime(); eta != nil {
		if err = o.ScheduleDelivery(*eta); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	if err = operatorRepo.Update(ctx, op); err != nil {
		return err
	}

	n, err := h.notifier.OrderStatusChanged(o)
	if err = store(ctx, uow.NotificationRepository(), n, err); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
