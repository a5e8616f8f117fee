package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
)

type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	notifier   services.Notifier
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		notifier:   services.NewNotifier(),
	}
}

// Handle cancels the order and returns any vehicle and operator it held to Available.
// The owner and staff may cancel.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
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

	if err = cmd.Actor().RequireOwnerOr(o.UserID(), user.Admin, user.Provider); err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
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
