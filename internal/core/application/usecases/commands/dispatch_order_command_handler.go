package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
)

type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   services.Notifier
}

func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
	}
}

// Handle moves the order from Confirmed to InTransit.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if err = o.Dispatch(); err != nil {
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
