package commands

import (
	"errors"
	"time"

	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

var ErrAddPaymentMethodCommandIsNotConstructed = errors.New(
	"AddPaymentMethodCommand must be created via NewAddPaymentMethodCommand constructor",
)

// AddPaymentMethodCommand stores a card for the caller. The card number is validated
// here and never leaves the command unencrypted except through the card cipher.
type AddPaymentMethodCommand struct {
	actor          ports.AccessClaims
	cardHolderName string
	cardNumber     paymentmethod.CardNumber
	cardType       string
	expiryDate     time.Time
	isDefault      bool

	guard guard.ConstructorGuard
}

func NewAddPaymentMethodCommand(
	actor ports.AccessClaims,
	cardHolderName, cardNumber, cardType string,
	expiryYear int,
	expiryMonth time.Month,
	isDefault bool,
) (AddPaymentMethodCommand, error) {
	number, numberErr := paymentmethod.ParseCardNumber(cardNumber)

	var monthErr error
	if expiryMonth < time.January || expiryMonth > time.December {
		monthErr = errs.NewValueIsOutOfRangeError("expiry month", int(expiryMonth), 1, 12)
	}

	if err := errors.Join(actor.Validate(), numberErr, monthErr); err != nil {
		return AddPaymentMethodCommand{}, err
	}

	return AddPaymentMethodCommand{
		actor:          actor,
		cardHolderName: cardHolderName,
		cardNumber:     number,
		cardType:       cardType,
		expiryDate:     paymentmethod.ExpiryEndOfMonth(expiryYear, expiryMonth),
		isDefault:      isDefault,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AddPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentMethodCommandIsNotConstructed)
}

func (c AddPaymentMethodCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c AddPaymentMethodCommand) CardHolderName() string {
	return c.cardHolderName
}

func (c AddPaymentMethodCommand) CardNumber() paymentmethod.CardNumber {
	return c.cardNumber
}

func (c AddPaymentMethodCommand) CardType() string {
	return c.cardType
}

func (c AddPaymentMethodCommand) ExpiryDate() time.Time {
	return c.expiryDate
}

func (c AddPaymentMethodCommand) IsDefault() bool {
	return c.isDefault
}
