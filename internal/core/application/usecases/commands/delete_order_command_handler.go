package commands

import (
	"context"
	"fmt"

	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"
)

type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order. An order that currently holds a vehicle and operator
// (Confirmed or InTransit) has to be cancelled first so that they are released.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
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

	if o.Status() == order.Confirmed || o.Status() == order.InTransit {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s is %s; cancel it before deleting", o.Number(), o.Status()))
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
