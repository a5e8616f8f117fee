package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	notifier   services.Notifier
	clock      ports.Clock
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle marks the order Delivered at the current time and releases its vehicle and
// operator.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Deliver(h.clock.Now()); err != nil {
		return err
	}

	if err = releaseResources(ctx, uow, h.dispatcher, o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	n, err := h.notifier.OrderStatusChanged(o)
	if err = store(ctx, uow.NotificationRepository(), n, err); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
