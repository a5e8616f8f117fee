// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization, transaction
// management, and persistence.
package commands

import (
	"context"

	"fueltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work covering the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	PaymentMethodRepoFactory interface {
		PaymentMethodRepository() ports.PaymentMethodRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for the order lifecycle: the order itself, the
	// vehicle and operator it holds and the notifications it produces.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   v, err := uow.VehicleRepository().GetForUpdate(ctx, vehicleID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		OperatorRepoFactory
		NotificationRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payments and the orders they charge.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		PaymentMethodRepoFactory
		NotificationRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// PaymentMethodUoW manages transactions for stored cards.
	PaymentMethodUoW interface {
		TxManager
		PaymentMethodRepoFactory
	}

	PaymentMethodUoWFactory interface {
		Create() PaymentMethodUoW
	}

	// FleetUoW manages transactions for vehicles and operators, including the notices
	// sent to administrators about them.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		OperatorRepoFactory
		UserRepoFactory
		NotificationRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// NotificationUoW manages transactions for notification reads.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans every aggregate. Used for seeding.
	UoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
		PaymentRepoFactory
		PaymentMethodRepoFactory
		VehicleRepoFactory
		OperatorRepoFactory
		NotificationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
