package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueltrack/internal/adapters/out/postgres/pgerr"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new user and assigns its identifier.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// Update writes every field of an existing user.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return subject(aggregate).Write(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID())
	}

	aggregate.Touch(dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	return toDomain(dto)
}

// FindByEmail retrieves a user by email. The email is normalized before the lookup.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	normalized := user.NormalizeEmail(email)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", normalized)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return toDomain(dto)
}

// FindByRefreshToken retrieves the user holding token as its active refresh token
// and locks the row until the transaction ends. A concurrent caller presenting the
// same token waits and then finds nothing once the token is rotated.
// Expiry is not checked here.
func (r *GormUserRepository) FindByRefreshToken(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("refresh token")
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "refresh_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refresh token", "<redacted>")
		}
		return nil, fmt.Errorf("find user by refresh token: %w", err)
	}

	return toDomain(dto)
}

// ListIDsByRole returns the identifiers of every user with role.
func (r *GormUserRepository) ListIDsByRole(ctx context.Context, role user.Role) ([]kernel.ID, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var raw []int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("role = ?", int(role)).
		Order("id").
		Pluck("id", &raw).Error; err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.ID(id))
	}
	return ids, nil
}

// Delete removes a user. Orders restrict the deletion; payment methods and
// notifications are removed with the user by the database.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s := pgerr.Subject{Entity: "user", ID: id}

	var orders int64
	if err := r.db.WithContext(ctx).Table("orders").Where("user_id = ?", id.Int64()).Count(&orders).Error; err != nil {
		return fmt.Errorf("count orders of user %s: %w", id, err)
	}
	if orders > 0 {
		return errs.NewDependencyExistsError("user", id, fmt.Sprintf("%d order(s)", orders))
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, id.Int64())
	if result.Error != nil {
		return s.Delete(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id)
	}

	return nil
}

func subject(aggregate *user.User) pgerr.Subject {
	return pgerr.Subject{Entity: "user", ID: aggregate.ID(), Field: "email", Value: aggregate.Email()}
}
