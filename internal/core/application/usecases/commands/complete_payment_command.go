package commands

import (
	"errors"
	"strings"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand records a successful charge. Without a transaction id from the
// processor one is generated.
type CompletePaymentCommand struct {
	paymentTarget
	transactionID string
}

func NewCompletePaymentCommand(
	actor ports.AccessClaims,
	paymentID kernel.ID,
	transactionID string,
) (CompletePaymentCommand, error) {
	target, err := newPaymentTarget(actor, paymentID)
	if err != nil {
		return CompletePaymentCommand{}, err
	}
	return CompletePaymentCommand{
		paymentTarget: target,
		transactionID: strings.TrimSpace(transactionID),
	}, nil
}

func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// TransactionID returns the processor's transaction id, or "" to generate one.
func (c CompletePaymentCommand) TransactionID() string {
	return c.transactionID
}
