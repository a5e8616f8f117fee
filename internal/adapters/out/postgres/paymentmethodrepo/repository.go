package paymentmethodrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/adapters/out/postgres/pgerr"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentMethodRepository implements ports.PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormPaymentMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentMethodRepository) Add(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Subject{Entity: "payment method"}.Write(err)
	}

	if err := aggregate.MarkPersisted(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentMethodRepository) Update(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&PaymentMethodDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Subject{Entity: "payment method", ID: aggregate.ID()}.Write(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment method", aggregate.ID())
	}

	aggregate.Touch(dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentMethodRepository) Get(ctx context.Context, id kernel.ID) (*paymentmethod.PaymentMethod, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment method", id)
		}
		return nil, fmt.Errorf("get payment method %s: %w", id, err)
	}

	return toDomain(dto)
}

// ListByUser returns the payment methods of a user, the default one first.
func (r *GormPaymentMethodRepository) ListByUser(
	ctx context.Context,
	userID kernel.ID,
) ([]*paymentmethod.PaymentMethod, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentMethodDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("is_default DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list payment methods of user %s: %w", userID, err)
	}

	methods := make([]*paymentmethod.PaymentMethod, 0, len(dtos))
	for _, dto := range dtos {
		pm, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}
	return methods, nil
}

// Delete removes a payment method unless payments still reference it.
func (r *GormPaymentMethodRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var payments int64
	if err := r.db.WithContext(ctx).Table("payments").
		Where("payment_method_id = ?", id.Int64()).
		Count(&payments).Error; err != nil {
		return fmt.Errorf("count payments of payment method %s: %w", id, err)
	}
	if payments > 0 {
		return errs.NewDependencyExistsError("payment method", id, fmt.Sprintf("%d payment(s)", payments))
	}

	result := r.db.WithContext(ctx).Delete(&PaymentMethodDTO{}, id.Int64())
	if result.Error != nil {
		return pgerr.Subject{Entity: "payment method", ID: id}.Delete(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment method", id)
	}

	return nil
}
