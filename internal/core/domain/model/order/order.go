package order

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

const (
	maxNumberLength  = 50
	maxAddressLength = 500
	numberPrefix     = "FT"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client's fuel order. It is the aggregate root that manages the order
// lifecycle from placement through assignment and transit to delivery or cancellation.
//
// Order follows these invariants:
//   - Belongs to exactly one user
//   - Order number is non-empty (uniqueness is enforced by the store)
//   - Quantity and price per liter are positive; TotalAmount = Quantity × PricePerLiter
//   - Status transitions follow the Status state machine
//   - A Confirmed order was confirmed with both a vehicle and an operator
//
// The assigned vehicle and operator are nullable foreign keys: deleting either of them
// clears the reference but leaves the order in place.
type Order struct {
	kernel.Entity

	// userID is the owner that placed the order
	userID kernel.ID

	// number is the human-facing order reference
	number string

	fuelType      FuelType
	quantity      kernel.Amount
	pricePerLiter kernel.Amount
	totalAmount   kernel.Amount

	// status represents the current state in the order lifecycle
	status Status

	deliveryAddress  string
	deliveryLocation *kernel.Coordinates

	estimatedDeliveryTime *time.Time
	actualDeliveryTime    *time.Time

	// vehicleID and operatorID are nil until assignment, and again after the
	// referenced resource is deleted
	vehicleID  *kernel.ID
	operatorID *kernel.ID

	// guard ensures the order was created via NewOrder or RestoreOrder
	guard guard.ConstructorGuard
}

// State carries the persisted fields of an order for RestoreOrder.
type State struct {
	UserID                kernel.ID
	Number                string
	FuelType              FuelType
	Quantity              kernel.Amount
	PricePerLiter         kernel.Amount
	TotalAmount           kernel.Amount
	Status                Status
	DeliveryAddress       string
	DeliveryLocation      *kernel.Coordinates
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	VehicleID             *kernel.ID
	OperatorID            *kernel.ID
}

// NewNumber generates an order number such as "FT-20260316-3F2A9C1B".
// The random suffix makes collisions unlikely; the unique index makes them impossible.
func NewNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", numberPrefix, now.UTC().Format("20060102"), suffix)
}

// NewOrder creates a Pending order and computes its total amount.
//
// Parameters:
//   - userID: owner of the order (must be a valid identifier)
//   - number: unique order number, see NewNumber
//   - fuelType: requested fuel
//   - quantity: liters requested (must be positive)
//   - pricePerLiter: unit price (must be positive)
//   - deliveryAddress: non-empty address, at most 500 characters
//   - deliveryLocation: optional coordinates of the address
//
// Returns:
//   - *Order: the created order in Pending status with no assignment
//   - error: all validation errors joined
//
// Example:
//
//	quantity, _ := kernel.ParseAmount("100.00")
//	price, _ := kernel.ParseAmount("1.50")
//	o, err := order.NewOrder(userID, order.NewNumber(now), order.Diesel, quantity, price, "Calle 80 #12-30", nil)
//	// o.TotalAmount().String() == "150.00"
func NewOrder(
	userID kernel.ID,
	number string,
	fuelType FuelType,
	quantity kernel.Amount,
	pricePerLiter kernel.Amount,
	deliveryAddress string,
	deliveryLocation *kernel.Coordinates,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setNumber(number),
		o.setFuelType(fuelType),
		o.setPricing(quantity, pricePerLiter),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage. Stored amounts are taken
// as they are; only structural validity is checked.
func RestoreOrder(entity kernel.Entity, state State) (*Order, error) {
	o := &Order{
		Entity:                entity,
		totalAmount:           state.TotalAmount,
		estimatedDeliveryTime: state.EstimatedDeliveryTime,
		actualDeliveryTime:    state.ActualDeliveryTime,
		vehicleID:             state.VehicleID,
		operatorID:            state.OperatorID,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		o.setUserID(state.UserID),
		o.setNumber(state.Number),
		o.setFuelType(state.FuelType),
		state.Quantity.Validate(),
		state.PricePerLiter.Validate(),
		state.TotalAmount.Validate(),
		state.Status.Validate(),
		o.setDeliveryAddress(state.DeliveryAddress),
		o.setDeliveryLocation(state.DeliveryLocation),
	); err != nil {
		return nil, err
	}

	o.quantity = state.Quantity
	o.pricePerLiter = state.PricePerLiter
	o.status = state.Status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two persisted orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.IsTransient() && o.ID() == other.ID()
}

// UserID returns the owner of the order.
func (o *Order) UserID() kernel.ID {
	return o.userID
}

// Number returns the order number.
func (o *Order) Number() string {
	return o.number
}

// FuelType returns the ordered fuel.
func (o *Order) FuelType() FuelType {
	return o.fuelType
}

// Quantity returns the ordered liters.
func (o *Order) Quantity() kernel.Amount {
	return o.quantity
}

// PricePerLiter returns the unit price.
func (o *Order) PricePerLiter() kernel.Amount {
	return o.pricePerLiter
}

// TotalAmount returns Quantity × PricePerLiter at two decimal places.
func (o *Order) TotalAmount() kernel.Amount {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryLocation returns the delivery coordinates, or nil when unknown.
func (o *Order) DeliveryLocation() *kernel.Coordinates {
	return o.deliveryLocation
}

// EstimatedDeliveryTime returns the promised delivery time, if any.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// ActualDeliveryTime returns when the order was delivered, if it was.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// VehicleID returns the assigned vehicle, or nil.
func (o *Order) VehicleID() *kernel.ID {
	return o.vehicleID
}

// OperatorID returns the assigned operator, or nil.
func (o *Order) OperatorID() *kernel.ID {
	return o.operatorID
}

// Confirm records the vehicle and operator assignment and moves Pending -> Confirmed.
//
// Availability of the vehicle and operator is not checked here; callers go through
// services.OrderDispatcher, which occupies both resources first.
func (o *Order) Confirm(vehicleID, operatorID kernel.ID) error {
	if err := errors.Join(vehicleID.Validate(), operatorID.Validate()); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = &vehicleID
	o.operatorID = &operatorID
	return nil
}

// Dispatch moves Confirmed -> InTransit.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver moves InTransit -> Delivered and records the actual delivery time.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	deliveredAt := at.UTC()
	o.actualDeliveryTime = &deliveredAt
	return nil
}

// Cancel moves any non-terminal status to Cancelled. The vehicle and operator ids are
// kept for history; releasing the resources is the dispatcher's job.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ScheduleDelivery sets the estimated delivery time of a non-terminal order.
func (o *Order) ScheduleDelivery(at time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated delivery time",
			fmt.Errorf("order in %s status cannot be rescheduled", o.status),
		)
	}

	eta := at.UTC()
	o.estimatedDeliveryTime = &eta
	return nil
}

// HasAssignment reports whether the order currently holds a vehicle or an operator.
func (o *Order) HasAssignment() bool {
	return o.vehicleID != nil || o.operatorID != nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if utf8.RuneCountInString(number) > maxNumberLength {
		return errs.NewValueIsOutOfRangeError("order number length", utf8.RuneCountInString(number), 1, maxNumberLength)
	}
	o.number = number
	return nil
}

func (o *Order) setFuelType(fuelType FuelType) error {
	if err := fuelType.Validate(); err != nil {
		return err
	}
	o.fuelType = fuelType
	return nil
}

func (o *Order) setPricing(quantity, pricePerLiter kernel.Amount) error {
	if err := errors.Join(quantity.Validate(), pricePerLiter.Validate()); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if !pricePerLiter.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price per liter", fmt.Errorf("%s is not greater than 0", pricePerLiter))
	}

	total, err := quantity.Mul(pricePerLiter)
	if err != nil {
		return err
	}

	o.quantity = quantity
	o.pricePerLiter = pricePerLiter
	o.totalAmount = total
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("delivery address length", utf8.RuneCountInString(address), 1, maxAddressLength)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryLocation(location *kernel.Coordinates) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	o.deliveryLocation = location
	return nil
}
