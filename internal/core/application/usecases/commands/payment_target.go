package commands

import (
	"context"
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

// paymentTarget is the caller and payment shared by the payment transition commands.
type paymentTarget struct {
	actor     ports.AccessClaims
	paymentID kernel.ID

	guard guard.ConstructorGuard
}

func newPaymentTarget(actor ports.AccessClaims, paymentID kernel.ID) (paymentTarget, error) {
	if err := errors.Join(actor.Validate(), paymentID.Validate()); err != nil {
		return paymentTarget{}, err
	}

	return paymentTarget{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (t paymentTarget) Actor() ports.AccessClaims {
	return t.actor
}

func (t paymentTarget) PaymentID() kernel.ID {
	return t.paymentID
}

// lockPayment locks the order of payment id and then the payment itself. Every payment
// transition takes the locks in this order.
func lockPayment(ctx context.Context, uow PaymentUoW, id kernel.ID) (*order.Order, *payment.Payment, error) {
	paymentRepo := uow.PaymentRepository()

	unlocked, err := paymentRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, unlocked.OrderID())
	if err != nil {
		return nil, nil, err
	}

	pay, err := paymentRepo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return o, pay, nil
}
