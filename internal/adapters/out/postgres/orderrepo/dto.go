// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Vehicle and operator are nullable foreign keys that the database clears when the
// referenced resource is deleted.
type OrderDTO struct {
	ID                    int64 `gorm:"primaryKey;autoIncrement"`
	UserID                int64
	OrderNumber           string
	FuelType              int
	Quantity              decimal.Decimal `gorm:"type:numeric(18,2)"`
	PricePerLiter         decimal.Decimal `gorm:"type:numeric(18,2)"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status                int
	DeliveryAddress       string
	DeliveryLatitude      *float64
	DeliveryLongitude     *float64
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	VehicleID             *int64
	OperatorID            *int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lat, long := kernel.SplitCoordinates(aggregate.DeliveryLocation())

	return OrderDTO{
		ID:                    aggregate.ID().Int64(),
		UserID:                aggregate.UserID().Int64(),
		OrderNumber:           aggregate.Number(),
		FuelType:              int(aggregate.FuelType()),
		Quantity:              aggregate.Quantity().Decimal(),
		PricePerLiter:         aggregate.PricePerLiter().Decimal(),
		TotalAmount:           aggregate.TotalAmount().Decimal(),
		Status:                int(aggregate.Status()),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		DeliveryLatitude:      lat,
		DeliveryLongitude:     long,
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		VehicleID:             kernel.RawID(aggregate.VehicleID()),
		OperatorID:            kernel.RawID(aggregate.OperatorID()),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewAmount(dto.Quantity)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewAmount(dto.PricePerLiter)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewAmount(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewOptionalCoordinates(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(entity, order.State{
		UserID:                kernel.ID(dto.UserID),
		Number:                dto.OrderNumber,
		FuelType:              order.FuelType(dto.FuelType),
		Quantity:              quantity,
		PricePerLiter:         price,
		TotalAmount:           total,
		Status:                order.Status(dto.Status),
		DeliveryAddress:       dto.DeliveryAddress,
		DeliveryLocation:      location,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		ActualDeliveryTime:    dto.ActualDeliveryTime,
		VehicleID:             kernel.OptionalID(dto.VehicleID),
		OperatorID:            kernel.OptionalID(dto.OperatorID),
	})
}
