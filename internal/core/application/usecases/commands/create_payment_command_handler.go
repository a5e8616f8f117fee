package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

// CreatePaymentCommandHandler checks a new payment against services.PaymentPolicy and
// stores it. The order row stays locked until commit, so concurrent payments on one
// order cannot overshoot its total together.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     services.PaymentPolicy
	clock      ports.Clock
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewPaymentPolicy(),
		clock:      clock,
	}
}

// Handle returns the identifier of the Pending payment. The order owner and
// administrators may pay.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (kernel.ID, error) {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = cmd.Actor().RequireOwnerOr(o.UserID(), user.Admin); err != nil {
		return 0, err
	}

	pm, err := uow.PaymentMethodRepository().Get(ctx, cmd.PaymentMethodID())
	if err != nil {
		return 0, err
	}

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return 0, err
	}

	if err = h.policy.CheckNewPayment(o, pm, cmd.Amount(), existing, h.clock.Now()); err != nil {
		return 0, err
	}

	pay, err := payment.NewPayment(o.ID(), pm.ID(), cmd.Amount())
	if err != nil {
		return 0, err
	}

	if err = paymentRepo.Add(ctx, pay); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return pay.ID(), nil
}
