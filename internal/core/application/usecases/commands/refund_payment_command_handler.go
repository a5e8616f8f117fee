package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
)

type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   services.Notifier
}

func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
	}
}

// Handle refunds the payment. Only administrators may refund.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	o, pay, err := lockPayment(ctx, uow, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pay.Refund(); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, pay); err != nil {
		return err
	}

	n, err := h.notifier.PaymentStatusChanged(o, pay)
	if err = store(ctx, uow.NotificationRepository(), n, err); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
