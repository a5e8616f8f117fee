package paymentmethod

import (
	"errors"
	"strings"

	"fueltrack/internal/pkg/errs"
)

const (
	minCardNumberLength = 12
	maxCardNumberLength = 19
)

// CardNumber is a validated primary account number. It only lives long enough to be
// encrypted; the aggregate keeps the ciphertext and the last four digits.
type CardNumber struct {
	digits string
}

// ParseCardNumber strips spaces and dashes and checks length and the Luhn checksum.
func ParseCardNumber(raw string) (CardNumber, error) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	if digits == "" {
		return CardNumber{}, errs.NewValueIsRequiredError("card number")
	}
	if len(digits) < minCardNumberLength || len(digits) > maxCardNumberLength {
		return CardNumber{}, errs.NewValueIsOutOfRangeError(
			"card number length", len(digits), minCardNumberLength, maxCardNumberLength)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return CardNumber{}, errs.NewValueIsInvalidErrorWithCause("card number", errors.New("only digits are allowed"))
		}
	}
	if !luhnValid(digits) {
		return CardNumber{}, errs.NewValueIsInvalidErrorWithCause("card number", errors.New("checksum mismatch"))
	}
	return CardNumber{digits: digits}, nil
}

// Digits returns the plain number, for encryption only.
func (c CardNumber) Digits() string {
	return c.digits
}

// LastFour returns the last four digits shown to the card holder.
func (c CardNumber) LastFour() string {
	return c.digits[len(c.digits)-4:]
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
