package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     services.PaymentPolicy
	notifier   services.Notifier
	clock      ports.Clock
}

func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewPaymentPolicy(),
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle completes a Pending payment, provided the completed total stays within the
// order total.
func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	existing, err := uow.PaymentRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = h.policy.CheckCompletion(o, pay, existing); err != nil {
		return err
	}

	transactionID := cmd.TransactionID()
	if transactionID == "" {
		transactionID = payment.NewTransactionID()
	}

	if err = pay.Complete(transactionID, h.clock.Now()); err != nil {
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
