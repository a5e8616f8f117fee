// Package postgres provides the GORM-based Unit of Work, the schema migrations and the
// repositories of the fuel delivery system.
//
// The Unit of Work maintains the list of aggregates affected by a business transaction
// and, once the transaction commits, hands the notifications created inside it to the
// notification publisher.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	...
//	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // n is published after the commit succeeds
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction and must not be shared between goroutines
//   - Status transitions read their aggregates with GetForUpdate so that concurrent requests
//     touching the same rows serialize on row locks
//   - Publishing never happens for a rolled back transaction
package postgres

import (
	"context"

	"fueltrack/internal/adapters/out/postgres/notificationrepo"
	"fueltrack/internal/adapters/out/postgres/operatorrepo"
	"fueltrack/internal/adapters/out/postgres/orderrepo"
	"fueltrack/internal/adapters/out/postgres/paymentmethodrepo"
	"fueltrack/internal/adapters/out/postgres/paymentrepo"
	"fueltrack/internal/adapters/out/postgres/userrepo"
	"fueltrack/internal/adapters/out/postgres/vehiclerepo"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.NotificationPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// publisher may be nil, in which case stored notifications are not published anywhere.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{db: db, publisher: publisher, logger: logger}
}

// Create produces a new UnitOfWork instance with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories and
// tracks the aggregates they write.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.NotificationPublisher
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling it twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the notifications stored in it.
// A publishing failure is logged and does not fail the commit: the notifications are
// already stored and remain visible through the API.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publish(ctx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
// Calling Rollback after Commit returns gorm.ErrInvalidTransaction and has no effect,
// so handlers can defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentMethodRepository() ports.PaymentMethodRepository {
	return paymentmethodrepo.NewGormPaymentMethodRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OperatorRepository() ports.OperatorRepository {
	return operatorrepo.NewGormOperatorRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work. Repositories
// call it after every successful Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// pendingNotifications returns the unread notifications tracked so far, each once.
// Marking a notification read also tracks it, and those must not be published again.
func (uow *GormUnitOfWork) pendingNotifications() []*notification.Notification {
	seen := make(map[kernel.ID]struct{})
	pending := make([]*notification.Notification, 0)

	for _, tracked := range uow.trackedAggregates {
		n, ok := tracked.Aggregate.(*notification.Notification)
		if !ok || n.IsRead() {
			continue
		}
		if _, dup := seen[tracked.ID]; dup {
			continue
		}
		seen[tracked.ID] = struct{}{}
		pending = append(pending, n)
	}

	return pending
}

func (uow *GormUnitOfWork) publish(ctx context.Context) {
	pending := uow.pendingNotifications()
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if uow.publisher == nil || len(pending) == 0 {
		return
	}

	if err := uow.publisher.Publish(ctx, pending...); err != nil {
		uow.logger.Warn("publish notifications",
			zap.Int("count", len(pending)),
			zap.Error(err),
		)
	}
}
