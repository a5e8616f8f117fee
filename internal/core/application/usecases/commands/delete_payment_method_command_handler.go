package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
)

type DeletePaymentMethodCommandHandler struct {
	uowFactory PaymentMethodUoWFactory
}

func NewDeletePaymentMethodCommandHandler(uowFactory PaymentMethodUoWFactory) DeletePaymentMethodCommandHandler {
	return DeletePaymentMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the card. When it was the default, the oldest remaining card of the
// owner becomes the default. Returns errs.ErrDependencyExists while payments reference it.
func (h DeletePaymentMethodCommandHandler) Handle(ctx context.Context, cmd DeletePaymentMethodCommand) error {
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

	repo := uow.PaymentMethodRepository()
	pm, err := repo.Get(ctx, cmd.PaymentMethodID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().RequireOwnerOr(pm.UserID(), user.Admin); err != nil {
		return err
	}

	if err = repo.Delete(ctx, pm.ID()); err != nil {
		return err
	}

	if pm.IsDefault() {
		remaining, err := repo.ListByUser(ctx, pm.UserID())
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			next := remaining[0]
			next.MakeDefault()
			if err = repo.Update(ctx, next); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
