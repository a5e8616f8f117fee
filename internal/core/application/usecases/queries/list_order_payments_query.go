package queries

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrListOrderPaymentsQueryIsNotConstructed = errors.New(
	"ListOrderPaymentsQuery must be created via NewListOrderPaymentsQuery constructor",
)

// ListOrderPaymentsQuery lists the payments made against one order, oldest first.
type ListOrderPaymentsQuery struct {
	actor   ports.AccessClaims
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewListOrderPaymentsQuery(actor ports.AccessClaims, orderID kernel.ID) (ListOrderPaymentsQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return ListOrderPaymentsQuery{}, err
	}
	return ListOrderPaymentsQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderPaymentsQueryIsNotConstructed)
}

func (q ListOrderPaymentsQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q ListOrderPaymentsQuery) OrderID() kernel.ID {
	return q.orderID
}
