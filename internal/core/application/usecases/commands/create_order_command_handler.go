package commands

import (
	"context"
	"fmt"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order in Pending status with a generated order number and tells the
// owner it was received.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   services.Notifier
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle processes the order creation command and returns the new order's identifier.
// Clients order for themselves; an Admin may order on behalf of any user.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor := cmd.Actor()
	if err := actor.Require(user.Client, user.Admin); err != nil {
		return 0, err
	}
	if err := actor.RequireOwnerOr(cmd.OwnerID(), user.Admin); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	o, err := order.NewOrder(
		cmd.OwnerID(),
		order.NewNumber(now),
		cmd.FuelType(),
		cmd.Quantity(),
		cmd.PricePerLiter(),
		cmd.DeliveryAddress(),
		cmd.DeliveryLocation(),
	)
	if err != nil {
		return 0, err
	}

	if eta := cmd.EstimatedDeliveryTime(); eta != nil {
		if !eta.After(now) {
			return 0, errs.NewValueIsInvalidErrorWithCause("estimated delivery time",
				fmt.Errorf("%s is not in the future", eta.UTC().Format("2006-01-02T15:04:05Z")))
		}
		if err = o.ScheduleDelivery(*eta); err != nil {
			return 0, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	n, err := h.notifier.OrderStatusChanged(o)
	if err = store(ctx, uow.NotificationRepository(), n, err); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
