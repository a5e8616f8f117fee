// Package vehiclerepo persists vehicle aggregates with GORM.
package vehiclerepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

// VehicleDTO is the row of the vehicles table.
type VehicleDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	LicensePlate     string
	Brand            string
	Model            string
	Year             int
	Capacity         decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status           int
	CurrentLatitude  *float64
	CurrentLongitude *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	lat, long := kernel.SplitCoordinates(aggregate.CurrentLocation())

	return VehicleDTO{
		ID:               aggregate.ID().Int64(),
		LicensePlate:     aggregate.LicensePlate(),
		Brand:            aggregate.Brand(),
		Model:            aggregate.Model(),
		Year:             aggregate.Year(),
		Capacity:         aggregate.Capacity().Decimal(),
		Status:           int(aggregate.Status()),
		CurrentLatitude:  lat,
		CurrentLongitude: long,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewAmount(dto.Capacity)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewOptionalCoordinates(dto.CurrentLatitude, dto.CurrentLongitude)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(entity, vehicle.State{
		LicensePlate:    dto.LicensePlate,
		Brand:           dto.Brand,
		Model:           dto.Model,
		Year:            dto.Year,
		Capacity:        capacity,
		Status:          vehicle.Status(dto.Status),
		CurrentLocation: location,
	})
}
