package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	maxLicensePlateLength = 20
	maxBrandLength        = 100
	maxModelLength        = 100
	minYear               = 1900
	maxYear               = 2100
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a fuel truck that carries orders to their delivery address.
//
// Business rules:
//   - License plate is required, at most 20 characters, stored upper-cased and unique
//     across vehicles (enforced by the store)
//   - Brand and model are required, at most 100 characters each
//   - Capacity, in liters, is strictly positive
//   - Only an Available vehicle can be occupied by an order
//   - An InUse vehicle cannot change status administratively
type Vehicle struct {
	kernel.Entity

	licensePlate    string
	brand           string
	model           string
	year            int
	capacity        kernel.Amount
	status          Status
	currentLocation *kernel.Coordinates

	guard guard.ConstructorGuard
}

// State carries the persisted fields of a vehicle for RestoreVehicle.
type State struct {
	LicensePlate    string
	Brand           string
	Model           string
	Year            int
	Capacity        kernel.Amount
	Status          Status
	CurrentLocation *kernel.Coordinates
}

// NewVehicle registers an Available vehicle.
func NewVehicle(licensePlate, brand, model string, year int, capacity kernel.Amount) (*Vehicle, error) {
	v := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setLicensePlate(licensePlate),
		v.setBrand(brand),
		v.setModel(model),
		v.setYear(year),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
func RestoreVehicle(entity kernel.Entity, state State) (*Vehicle, error) {
	v := &Vehicle{
		Entity: entity,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		v.setLicensePlate(state.LicensePlate),
		v.setBrand(state.Brand),
		v.setModel(state.Model),
		v.setYear(state.Year),
		v.setCapacity(state.Capacity),
		state.Status.Validate(),
		v.SetLocation(state.CurrentLocation),
	); err != nil {
		return nil, err
	}

	v.status = state.Status
	return v, nil
}

// NormalizeLicensePlate returns the canonical plate used for storage and lookups.
func NormalizeLicensePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

func (v *Vehicle) Brand() string {
	return v.brand
}

func (v *Vehicle) Model() string {
	return v.model
}

func (v *Vehicle) Year() int {
	return v.year
}

func (v *Vehicle) Capacity() kernel.Amount {
	return v.capacity
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) CurrentLocation() *kernel.Coordinates {
	return v.currentLocation
}

func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// CanCarry reports whether quantity liters fit in the tank.
func (v *Vehicle) CanCarry(quantity kernel.Amount) bool {
	return !quantity.GreaterThan(v.capacity)
}

// Occupy marks an Available vehicle as InUse. Any other status makes the vehicle
// unavailable for assignment.
func (v *Vehicle) Occupy() error {
	if v.status != Available {
		return errs.NewResourceUnavailableError("vehicle", v.ID(), v.status.String())
	}
	v.status = InUse
	return nil
}

// Release returns an InUse vehicle to Available.
func (v *Vehicle) Release() error {
	if v.status != InUse {
		return errs.NewInvalidTransitionError("vehicle", v.status, Available)
	}
	v.status = Available
	return nil
}

// ChangeStatus applies an administrative status change such as sending the vehicle
// to maintenance. Entering or leaving InUse is reserved for assignment and release.
func (v *Vehicle) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !v.status.canChangeAdministrativelyTo(to) {
		return errs.NewInvalidTransitionError("vehicle", v.status, to)
	}
	v.status = to
	return nil
}

// SetLocation records the last known position of the vehicle; nil clears it.
func (v *Vehicle) SetLocation(location *kernel.Coordinates) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	v.currentLocation = location
	return nil
}

func (v *Vehicle) setLicensePlate(plate string) error {
	plate = NormalizeLicensePlate(plate)
	if plate == "" {
		return errs.NewValueIsRequiredError("license plate")
	}
	if n := utf8.RuneCountInString(plate); n > maxLicensePlateLength {
		return errs.NewValueIsOutOfRangeError("license plate length", n, 1, maxLicensePlateLength)
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setBrand(brand string) error {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if n := utf8.RuneCountInString(brand); n > maxBrandLength {
		return errs.NewValueIsOutOfRangeError("brand length", n, 1, maxBrandLength)
	}
	v.brand = brand
	return nil
}

func (v *Vehicle) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if n := utf8.RuneCountInString(model); n > maxModelLength {
		return errs.NewValueIsOutOfRangeError("model length", n, 1, maxModelLength)
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if year < minYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minYear, maxYear)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setCapacity(capacity kernel.Amount) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	if !capacity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%s is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}
