// Package operatorrepo persists operator aggregates with GORM.
package operatorrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
)

// OperatorDTO is the row of the operators table.
type OperatorDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	FirstName         string
	LastName          string
	LicenseNumber     string
	LicenseExpiryDate time.Time
	Phone             *string
	Status            int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (OperatorDTO) TableName() string {
	return "operators"
}

func fromDomain(aggregate *operator.Operator) OperatorDTO {
	return OperatorDTO{
		ID:                aggregate.ID().Int64(),
		FirstName:         aggregate.FirstName(),
		LastName:          aggregate.LastName(),
		LicenseNumber:     aggregate.LicenseNumber(),
		LicenseExpiryDate: aggregate.LicenseExpiryDate(),
		Phone:             aggregate.Phone(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return operator.RestoreOperator(entity, operator.State{
		FirstName:         dto.FirstName,
		LastName:          dto.LastName,
		LicenseNumber:     dto.LicenseNumber,
		LicenseExpiryDate: dto.LicenseExpiryDate,
		Phone:             dto.Phone,
		Status:            operator.Status(dto.Status),
	})
}
