// Package ports defines the contracts between the domain and the infrastructure of the
// fuel delivery system: repositories, the unit of work, security primitives and the
// notification publisher.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction, then hands the notifications added
	// during it to the notification publisher.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked aggregates.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
	PaymentMethodRepository() PaymentMethodRepository
	VehicleRepository() VehicleRepository
	OperatorRepository() OperatorRepository
	NotificationRepository() NotificationRepository
}
