package queries

import (
	"errors"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrListPaymentMethodsQueryIsNotConstructed = errors.New(
	"ListPaymentMethodsQuery must be created via NewListPaymentMethodsQuery constructor",
)

// ListPaymentMethodsQuery lists the caller's own cards, default first.
type ListPaymentMethodsQuery struct {
	actor ports.AccessClaims

	guard guard.ConstructorGuard
}

func NewListPaymentMethodsQuery(actor ports.AccessClaims) (ListPaymentMethodsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPaymentMethodsQuery{}, err
	}
	return ListPaymentMethodsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentMethodsQueryIsNotConstructed)
}

func (q ListPaymentMethodsQuery) Actor() ports.AccessClaims {
	return q.actor
}
