package paymentmethod

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	maxHolderNameLength = 100
	maxCardTypeLength   = 50
)

var (
	// ErrPaymentMethodIsNotConstructed is returned when using an improperly initialized PaymentMethod.
	ErrPaymentMethodIsNotConstructed = errors.New("PaymentMethod must be created via NewPaymentMethod constructor")

	lastFourPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// PaymentMethod is a card saved by a user for paying orders.
//
// Business rules:
//   - Card holder name is required, at most 100 characters
//   - Last four digits are exactly four digits
//   - Card type is required, at most 50 characters
//   - The card number is only held encrypted
//   - A card that is already expired cannot be added
type PaymentMethod struct {
	kernel.Entity

	userID              kernel.ID
	cardHolderName      string
	lastFourDigits      string
	cardType            string
	encryptedCardNumber string
	expiryDate          time.Time
	isDefault           bool

	guard guard.ConstructorGuard
}

// State carries the persisted fields of a payment method for RestorePaymentMethod.
type State struct {
	UserID              kernel.ID
	CardHolderName      string
	LastFourDigits      string
	CardType            string
	EncryptedCardNumber string
	ExpiryDate          time.Time
	IsDefault           bool
}

// ExpiryEndOfMonth returns the last second of the month printed on a card.
func ExpiryEndOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second)
}

// NewPaymentMethod creates a payment method for userID.
//
// Example:
//
//	number, _ := paymentmethod.ParseCardNumber("4111 1111 1111 1111")
//	encrypted, _ := cipher.Encrypt(number.Digits())
//	pm, err := paymentmethod.NewPaymentMethod(userID, "JUAN PEREZ", number.LastFour(), "Visa",
//	    encrypted, paymentmethod.ExpiryEndOfMonth(2028, time.May), true, time.Now())
func NewPaymentMethod(
	userID kernel.ID,
	cardHolderName string,
	lastFourDigits string,
	cardType string,
	encryptedCardNumber string,
	expiryDate time.Time,
	isDefault bool,
	now time.Time,
) (*PaymentMethod, error) {
	pm := &PaymentMethod{
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pm.setUserID(userID),
		pm.setCardHolderName(cardHolderName),
		pm.setLastFourDigits(lastFourDigits),
		pm.setCardType(cardType),
		pm.setEncryptedCardNumber(encryptedCardNumber),
		pm.setExpiryDate(expiryDate),
	); err != nil {
		return nil, err
	}

	if pm.IsExpired(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"expiry date", fmt.Errorf("card expired on %s", pm.expiryDate.Format(time.DateOnly)))
	}

	return pm, nil
}

// RestorePaymentMethod reconstructs a PaymentMethod from persistent storage. Expired
// cards are restored as they are.
func RestorePaymentMethod(entity kernel.Entity, state State) (*PaymentMethod, error) {
	pm := &PaymentMethod{
		Entity:    entity,
		isDefault: state.IsDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		pm.setUserID(state.UserID),
		pm.setCardHolderName(state.CardHolderName),
		pm.setLastFourDigits(state.LastFourDigits),
		pm.setCardType(state.CardType),
		pm.setEncryptedCardNumber(state.EncryptedCardNumber),
		pm.setExpiryDate(state.ExpiryDate),
	); err != nil {
		return nil, err
	}

	return pm, nil
}

func (pm *PaymentMethod) Validate() error {
	if pm == nil {
		return ErrPaymentMethodIsNotConstructed
	}
	return pm.guard.Validate(ErrPaymentMethodIsNotConstructed)
}

func (pm *PaymentMethod) UserID() kernel.ID {
	return pm.userID
}

func (pm *PaymentMethod) CardHolderName() string {
	return pm.cardHolderName
}

func (pm *PaymentMethod) LastFourDigits() string {
	return pm.lastFourDigits
}

func (pm *PaymentMethod) CardType() string {
	return pm.cardType
}

func (pm *PaymentMethod) EncryptedCardNumber() string {
	return pm.encryptedCardNumber
}

func (pm *PaymentMethod) ExpiryDate() time.Time {
	return pm.expiryDate
}

func (pm *PaymentMethod) IsDefault() bool {
	return pm.isDefault
}

// IsOwnedBy reports whether the payment method belongs to userID.
func (pm *PaymentMethod) IsOwnedBy(userID kernel.ID) bool {
	return pm.userID == userID
}

// IsExpired reports whether the card can no longer be charged at now.
func (pm *PaymentMethod) IsExpired(now time.Time) bool {
	return now.After(pm.expiryDate)
}

// MakeDefault marks this payment method as the owner's default.
func (pm *PaymentMethod) MakeDefault() {
	pm.isDefault = true
}

// ClearDefault removes the default mark, used when another method becomes the default.
func (pm *PaymentMethod) ClearDefault() {
	pm.isDefault = false
}

func (pm *PaymentMethod) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	pm.userID = id
	return nil
}

func (pm *PaymentMethod) setCardHolderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("card holder name")
	}
	if n := utf8.RuneCountInString(name); n > maxHolderNameLength {
		return errs.NewValueIsOutOfRangeError("card holder name length", n, 1, maxHolderNameLength)
	}
	pm.cardHolderName = name
	return nil
}

func (pm *PaymentMethod) setLastFourDigits(digits string) error {
	if !lastFourPattern.MatchString(digits) {
		return errs.NewValueIsInvalidErrorWithCause("last four digits", fmt.Errorf("%q is not four digits", digits))
	}
	pm.lastFourDigits = digits
	return nil
}

func (pm *PaymentMethod) setCardType(cardType string) error {
	cardType = strings.TrimSpace(cardType)
	if cardType == "" {
		return errs.NewValueIsRequiredError("card type")
	}
	if n := utf8.RuneCountInString(cardType); n > maxCardTypeLength {
		return errs.NewValueIsOutOfRangeError("card type length", n, 1, maxCardTypeLength)
	}
	pm.cardType = cardType
	return nil
}

func (pm *PaymentMethod) setEncryptedCardNumber(encrypted string) error {
	if encrypted == "" {
		return errs.NewValueIsRequiredError("encrypted card number")
	}
	pm.encryptedCardNumber = encrypted
	return nil
}

func (pm *PaymentMethod) setExpiryDate(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("expiry date")
	}
	pm.expiryDate = expiry.UTC()
	return nil
}
