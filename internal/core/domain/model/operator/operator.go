package operator

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	maxNameLength          = 100
	maxLicenseNumberLength = 20
	maxPhoneLength         = 20
)

// ErrOperatorIsNotConstructed is returned when using an improperly initialized Operator.
var ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

// Operator is a driver that can be assigned to orders.
//
// Business rules:
//   - First and last name are required, at most 100 characters
//   - License number is required, at most 20 characters, stored upper-cased and unique
//     across operators (enforced by the store)
//   - Only an Available operator whose license has not expired can be assigned
//   - An operator OnDelivery cannot change status administratively
type Operator struct {
	kernel.Entity

	firstName         string
	lastName          string
	licenseNumber     string
	licenseExpiryDate time.Time
	phone             *string
	status            Status

	guard guard.ConstructorGuard
}

// State carries the persisted fields of an operator for RestoreOperator.
type State struct {
	FirstName         string
	LastName          string
	LicenseNumber     string
	LicenseExpiryDate time.Time
	Phone             *string
	Status            Status
}

// NewOperator registers an Available operator.
func NewOperator(
	firstName, lastName, licenseNumber string,
	licenseExpiryDate time.Time,
	phone *string,
) (*Operator, error) {
	op := &Operator{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		op.setFirstName(firstName),
		op.setLastName(lastName),
		op.setLicenseNumber(licenseNumber),
		op.setLicenseExpiryDate(licenseExpiryDate),
		op.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperator reconstructs an Operator from persistent storage.
func RestoreOperator(entity kernel.Entity, state State) (*Operator, error) {
	op := &Operator{
		Entity: entity,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		op.setFirstName(state.FirstName),
		op.setLastName(state.LastName),
		op.setLicenseNumber(state.LicenseNumber),
		op.setLicenseExpiryDate(state.LicenseExpiryDate),
		op.setPhone(state.Phone),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	op.status = state.Status
	return op, nil
}

// NormalizeLicenseNumber returns the canonical license number used for storage and lookups.
func NormalizeLicenseNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func (op *Operator) Validate() error {
	if op == nil {
		return ErrOperatorIsNotConstructed
	}
	return op.guard.Validate(ErrOperatorIsNotConstructed)
}

func (op *Operator) FirstName() string {
	return op.firstName
}

func (op *Operator) LastName() string {
	return op.lastName
}

func (op *Operator) FullName() string {
	return op.firstName + " " + op.lastName
}

func (op *Operator) LicenseNumber() string {
	return op.licenseNumber
}

func (op *Operator) LicenseExpiryDate() time.Time {
	return op.licenseExpiryDate
}

func (op *Operator) Phone() *string {
	return op.phone
}

func (op *Operator) Status() Status {
	return op.status
}

// IsLicenseExpired reports whether the license is no longer valid at now.
func (op *Operator) IsLicenseExpired(now time.Time) bool {
	return !now.Before(op.licenseExpiryDate)
}

// Occupy marks an Available operator with a valid license as OnDelivery.
func (op *Operator) Occupy(now time.Time) error {
	if op.status != Available {
		return errs.NewResourceUnavailableError("operator", op.ID(), op.status.String())
	}
	if op.IsLicenseExpired(now) {
		return errs.NewResourceUnavailableError("operator", op.ID(), "license expired")
	}
	op.status = OnDelivery
	return nil
}

// Release returns an operator OnDelivery to Available.
func (op *Operator) Release() error {
	if op.status != OnDelivery {
		return errs.NewInvalidTransitionError("operator", op.status, Available)
	}
	op.status = Available
	return nil
}

// ChangeStatus applies an administrative status change: Available ⇄ OffDuty.
func (op *Operator) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	allowed := (op.status == Available && to == OffDuty) || (op.status == OffDuty && to == Available)
	if !allowed {
		return errs.NewInvalidTransitionError("operator", op.status, to)
	}

	op.status = to
	return nil
}

// RenewLicense records a new license expiry date.
func (op *Operator) RenewLicense(expiry time.Time) error {
	return op.setLicenseExpiryDate(expiry)
}

func (op *Operator) setFirstName(name string) error {
	return setBounded(&op.firstName, "first name", name, maxNameLength)
}

func (op *Operator) setLastName(name string) error {
	return setBounded(&op.lastName, "last name", name, maxNameLength)
}

func (op *Operator) setLicenseNumber(number string) error {
	return setBounded(&op.licenseNumber, "license number", NormalizeLicenseNumber(number), maxLicenseNumberLength)
}

func setBounded(dst *string, param, value string, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxLen)
	}
	*dst = value
	return nil
}

func (op *Operator) setLicenseExpiryDate(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("license expiry date")
	}
	op.licenseExpiryDate = expiry.UTC()
	return nil
}

func (op *Operator) setPhone(phone *string) error {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		op.phone = nil
		return nil
	}

	p := strings.TrimSpace(*phone)
	if n := utf8.RuneCountInString(p); n > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, 1, maxPhoneLength)
	}
	op.phone = &p
	return nil
}
