package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/adapters/out/postgres/pgerr"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Subject{Entity: "payment"}.Write(err)
	}

	if err := aggregate.MarkPersisted(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Subject{Entity: "payment", ID: aggregate.ID()}.Write(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", aggregate.ID())
	}

	aggregate.Touch(dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a payment by ID and holds a row lock until the transaction ends.
func (r *GormPaymentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPaymentRepository) get(db *gorm.DB, id kernel.ID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id)
		}
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}

	return toDomain(dto)
}

// ListByOrder returns every payment of an order, oldest first.
func (r *GormPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Int64()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list payments of order %s: %w", orderID, err)
	}

	return toDomainList(dtos)
}

// ListPendingCreatedBefore locks up to limit stale Pending payments. Rows already
// locked by another transaction are skipped, so concurrent sweeps never wait on
// each other.
func (r *GormPaymentRepository) ListPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*payment.Payment, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND created_at < ?", int(payment.Pending), cutoff).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}

	return toDomainList(dtos)
}
