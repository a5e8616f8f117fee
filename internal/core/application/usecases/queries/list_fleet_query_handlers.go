package queries

import (
	"context"

	"fueltrack/internal/core/domain/model/user"

	"gorm.io/gorm"
)

type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle lists vehicles ordered by license plate.
func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Actor().Require(user.Admin, user.Provider); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("vehicles").Select(`id, license_plate, brand, model, year, capacity,
		status, current_latitude, current_longitude, updated_at`)
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", int(*status))
	}

	var rows []vehicleRow
	if err := tx.Order("license_plate").Scan(&rows).Error; err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, row.response())
	}
	return vehicles, nil
}

type ListOperatorsQueryHandler struct {
	db *gorm.DB
}

func NewListOperatorsQueryHandler(db *gorm.DB) ListOperatorsQueryHandler {
	return ListOperatorsQueryHandler{db: db}
}

// Handle lists operators ordered by last and first name.
func (h ListOperatorsQueryHandler) Handle(ctx context.Context, query ListOperatorsQuery) ([]OperatorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Actor().Require(user.Admin, user.Provider); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("operators").Select(`id, first_name, last_name, license_number,
		license_expiry_date, phone, status`)
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", int(*status))
	}

	var rows []operatorRow
	if err := tx.Order("last_name, first_name, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	operators := make([]OperatorResponse, 0, len(rows))
	for _, row := range rows {
		operators = append(operators, row.response())
	}
	return operators, nil
}
