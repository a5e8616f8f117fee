package commands

import (
	"errors"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a fuel order.
//
// Example:
//
//	quantity, _ := kernel.ParseAmount("100")
//	price, _ := kernel.ParseAmount("1.50")
//	cmd, err := NewCreateOrderCommand(actor, nil, order.Diesel, quantity, price, "Calle 80 #12-30", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	actor                 ports.AccessClaims
	ownerID               kernel.ID
	fuelType              order.FuelType
	quantity              kernel.Amount
	pricePerLiter         kernel.Amount
	deliveryAddress       string
	deliveryLocation      *kernel.Coordinates
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand builds the command. ownerID is the user the order is placed
// for; nil means the caller itself.
func NewCreateOrderCommand(
	actor ports.AccessClaims,
	ownerID *kernel.ID,
	fuelType order.FuelType,
	quantity kernel.Amount,
	pricePerLiter kernel.Amount,
	deliveryAddress string,
	deliveryLocation *kernel.Coordinates,
	estimatedDeliveryTime *time.Time,
) (CreateOrderCommand, error) {
	owner := actor.UserID
	if ownerID != nil {
		owner = *ownerID
	}

	if err := errors.Join(
		actor.Validate(),
		owner.Validate(),
		fuelType.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		actor:                 actor,
		ownerID:               owner,
		fuelType:              fuelType,
		quantity:              quantity,
		pricePerLiter:         pricePerLiter,
		deliveryAddress:       deliveryAddress,
		deliveryLocation:      deliveryLocation,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c CreateOrderCommand) OwnerID() kernel.ID {
	return c.ownerID
}

func (c CreateOrderCommand) FuelType() order.FuelType {
	return c.fuelType
}

func (c CreateOrderCommand) Quantity() kernel.Amount {
	return c.quantity
}

func (c CreateOrderCommand) PricePerLiter() kernel.Amount {
	return c.pricePerLiter
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) DeliveryLocation() *kernel.Coordinates {
	return c.deliveryLocation
}

func (c CreateOrderCommand) EstimatedDeliveryTime() *time.Time {
	return c.estimatedDeliveryTime
}
