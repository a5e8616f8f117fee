package services

import (
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/pkg/errs"
)

// PaymentPolicy decides whether an order can be charged.
//
// Business rules:
//   - Cancelled orders cannot be charged
//   - The payment method must belong to the order's owner and must not be expired
//   - Completed payments on an order never add up to more than its total
type PaymentPolicy struct{}

func NewPaymentPolicy() PaymentPolicy {
	return PaymentPolicy{}
}

// CheckNewPayment validates a payment of amount against o, pm and the payments
// already recorded on o.
func (p PaymentPolicy) CheckNewPayment(
	o *order.Order,
	pm *paymentmethod.PaymentMethod,
	amount kernel.Amount,
	existing []*payment.Payment,
	now time.Time,
) error {
	if err := errors.Join(o.Validate(), pm.Validate(), amount.Validate()); err != nil {
		return err
	}

	if o.Status() == order.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s is Cancelled", o.Number()))
	}

	if !pm.IsOwnedBy(o.UserID()) {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("payment method %s does not belong to the owner of order %s", pm.ID(), o.Number()))
	}

	if pm.IsExpired(now) {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("card ending in %s is expired", pm.LastFourDigits()))
	}

	return p.checkWithinTotal(o, amount, existing)
}

// CheckCompletion validates that completing pay keeps o within its total.
func (p PaymentPolicy) CheckCompletion(o *order.Order, pay *payment.Payment, existing []*payment.Payment) error {
	if err := errors.Join(o.Validate(), pay.Validate()); err != nil {
		return err
	}

	others := make([]*payment.Payment, 0, len(existing))
	for _, e := range existing {
		if e.ID() != pay.ID() {
			others = append(others, e)
		}
	}

	return p.checkWithinTotal(o, pay.Amount(), others)
}

// PaidAmount sums the Completed payments in payments.
func (p PaymentPolicy) PaidAmount(payments []*payment.Payment) (kernel.Amount, error) {
	paid := kernel.ZeroAmount()
	for _, pay := range payments {
		if pay.Status() != payment.Completed {
			continue
		}

		sum, err := paid.Add(pay.Amount())
		if err != nil {
			return kernel.Amount{}, err
		}
		paid = sum
	}
	return paid, nil
}

func (p PaymentPolicy) checkWithinTotal(o *order.Order, amount kernel.Amount, existing []*payment.Payment) error {
	paid, err := p.PaidAmount(existing)
	if err != nil {
		return err
	}

	after, err := paid.Add(amount)
	if err != nil {
		return err
	}

	if after.GreaterThan(o.TotalAmount()) {
		remaining := o.TotalAmount().Decimal().Sub(paid.Decimal())
		return errs.NewValueIsOutOfRangeError("payment amount", amount, "0.01", remaining.StringFixed(kernel.AmountScale))
	}

	return nil
}
