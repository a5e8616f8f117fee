package operatorrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/adapters/out/postgres/pgerr"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperatorRepository implements ports.OperatorRepository using GORM.
type GormOperatorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormOperatorRepository(db *gorm.DB, tracker aggregateTracker) *GormOperatorRepository {
	return &GormOperatorRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return subject(aggregate).Write(err)
	}

	if err := aggregate.MarkPersisted(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOperatorRepository) Update(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&OperatorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return subject(aggregate).Write(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("operator", aggregate.ID())
	}

	aggregate.Touch(dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.ID) (*operator.Operator, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an operator by ID and holds a row lock until the transaction ends.
func (r *GormOperatorRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*operator.Operator, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOperatorRepository) get(db *gorm.DB, id kernel.ID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperatorDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id)
		}
		return nil, fmt.Errorf("get operator %s: %w", id, err)
	}

	return toDomain(dto)
}

// ListAvailableWithExpiredLicense locks the Available operators whose license expired
// at or before now, skipping rows another transaction holds.
func (r *GormOperatorRepository) ListAvailableWithExpiredLicense(
	ctx context.Context,
	now time.Time,
) ([]*operator.Operator, error) {
	var dtos []OperatorDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND license_expiry_date <= ?", int(operator.Available), now).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list operators with expired license: %w", err)
	}

	operators := make([]*operator.Operator, 0, len(dtos))
	for _, dto := range dtos {
		op, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}
	return operators, nil
}

// Delete removes an operator. Orders referencing it lose the reference.
func (r *GormOperatorRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OperatorDTO{}, id.Int64())
	if result.Error != nil {
		return pgerr.Subject{Entity: "operator", ID: id}.Delete(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("operator", id)
	}

	return nil
}

func subject(aggregate *operator.Operator) pgerr.Subject {
	return pgerr.Subject{
		Entity: "operator",
		ID:     aggregate.ID(),
		Field:  "license number",
		Value:  aggregate.LicenseNumber(),
	}
}
