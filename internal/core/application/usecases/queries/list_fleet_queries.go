package queries

import (
	"errors"

	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var (
	ErrListVehiclesQueryIsNotConstructed = errors.New(
		"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
	)
	ErrListOperatorsQueryIsNotConstructed = errors.New(
		"ListOperatorsQuery must be created via NewListOperatorsQuery constructor",
	)
)

// ListVehiclesQuery lists the fleet, optionally filtered by status. Staff only.
type ListVehiclesQuery struct {
	actor  ports.AccessClaims
	status *vehicle.Status

	guard guard.ConstructorGuard
}

func NewListVehiclesQuery(actor ports.AccessClaims, status *vehicle.Status) (ListVehiclesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListVehiclesQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}
	return ListVehiclesQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q ListVehiclesQuery) Status() *vehicle.Status {
	return q.status
}

// ListOperatorsQuery lists operators, optionally filtered by status. Staff only.
type ListOperatorsQuery struct {
	actor  ports.AccessClaims
	status *operator.Status

	guard guard.ConstructorGuard
}

func NewListOperatorsQuery(actor ports.AccessClaims, status *operator.Status) (ListOperatorsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOperatorsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOperatorsQuery{}, err
		}
	}
	return ListOperatorsQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrListOperatorsQueryIsNotConstructed)
}

func (q ListOperatorsQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q ListOperatorsQuery) Status() *operator.Status {
	return q.status
}
