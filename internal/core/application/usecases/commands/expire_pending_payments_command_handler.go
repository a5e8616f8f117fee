package commands

import (
	"context"

	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

// ExpirePendingPaymentsCommandHandler processes one batch of stale payments per call.
// Rows already locked by a running transition are skipped and picked up next time.
type ExpirePendingPaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   services.Notifier
	clock      ports.Clock
}

func NewExpirePendingPaymentsCommandHandler(
	uowFactory PaymentUoWFactory,
	clock ports.Clock,
) ExpirePendingPaymentsCommandHandler {
	return ExpirePendingPaymentsCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle returns how many payments were marked Failed.
func (h ExpirePendingPaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePendingPaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	paymentRepo := uow.PaymentRepository()

	stale, err := paymentRepo.ListPendingCreatedBefore(ctx, now.Add(-cmd.TTL()), cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, pay := range stale {
		if err = pay.Fail(now); err != nil {
			return 0, err
		}

		if err = paymentRepo.Update(ctx, pay); err != nil {
			return 0, err
		}

		o, err := uow.OrderRepository().Get(ctx, pay.OrderID())
		if err != nil {
			return 0, err
		}

		n, err := h.notifier.PaymentStatusChanged(o, pay)
		if err = store(ctx, uow.NotificationRepository(), n, err); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
