package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

type FailPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   services.Notifier
	clock      ports.Clock
}

func NewFailPaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) FailPaymentCommandHandler {
	return FailPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

func (h FailPaymentCommandHandler) Handle(ctx context.Context, cmd FailPaymentCommand) error {
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

	o, pay, err := lockPayment(ctx, uow, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pay.Fail(h.clock.Now()); err != nil {
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
