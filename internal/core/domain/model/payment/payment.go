package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"

	"github.com/google/uuid"
)

const maxTransactionIDLength = 100

// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a charge against an order using one of the order owner's payment methods.
//
// Business rules:
//   - Amount is strictly positive
//   - A Completed payment carries a transaction id and a processing time
//   - A Failed payment carries a processing time
//   - Status transitions follow the Status state machine
type Payment struct {
	kernel.Entity

	orderID         kernel.ID
	paymentMethodID kernel.ID
	amount          kernel.Amount
	status          Status
	transactionID   *string
	processedAt     *time.Time

	guard guard.ConstructorGuard
}

// State carries the persisted fields of a payment for RestorePayment.
type State struct {
	OrderID         kernel.ID
	PaymentMethodID kernel.ID
	Amount          kernel.Amount
	Status          Status
	TransactionID   *string
	ProcessedAt     *time.Time
}

// NewTransactionID generates a processor reference for a payment that was completed
// without one.
func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString())
}

// NewPayment creates a Pending payment.
func NewPayment(orderID, paymentMethodID kernel.ID, amount kernel.Amount) (*Payment, error) {
	p := &Payment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setOrderID(orderID),
		p.setPaymentMethodID(paymentMethodID),
		p.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistent storage.
func RestorePayment(entity kernel.Entity, state State) (*Payment, error) {
	p := &Payment{
		Entity:        entity,
		transactionID: state.TransactionID,
		processedAt:   state.ProcessedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		p.setOrderID(state.OrderID),
		p.setPaymentMethodID(state.PaymentMethodID),
		p.setAmount(state.Amount),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = state.Status
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) OrderID() kernel.ID {
	return p.orderID
}

func (p *Payment) PaymentMethodID() kernel.ID {
	return p.paymentMethodID
}

func (p *Payment) Amount() kernel.Amount {
	return p.amount
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) ProcessedAt() *time.Time {
	return p.processedAt
}

// Complete moves Pending -> Completed, recording the processor's transaction id.
func (p *Payment) Complete(transactionID string, at time.Time) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	if n := utf8.RuneCountInString(transactionID); n > maxTransactionIDLength {
		return errs.NewValueIsOutOfRangeError("transaction id length", n, 1, maxTransactionIDLength)
	}

	newStatus, err := p.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	processedAt := at.UTC()
	p.status = newStatus
	p.transactionID = &transactionID
	p.processedAt = &processedAt
	return nil
}

// Fail moves Pending -> Failed.
func (p *Payment) Fail(at time.Time) error {
	newStatus, err := p.status.TransitionTo(Failed)
	if err != nil {
		return err
	}

	processedAt := at.UTC()
	p.status = newStatus
	p.processedAt = &processedAt
	return nil
}

// Refund moves Completed -> Refunded. The original transaction id and processing time are kept.
func (p *Payment) Refund() error {
	newStatus, err := p.status.TransitionTo(Refunded)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Payment) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	p.orderID = id
	return nil
}

func (p *Payment) setPaymentMethodID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payment method id", err)
	}
	p.paymentMethodID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}
