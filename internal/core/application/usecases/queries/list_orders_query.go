package queries

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListOrdersQuery lists orders newest first. Clients see only their own orders;
// administrators and providers see all of them.
type ListOrdersQuery struct {
	actor  ports.AccessClaims
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. A nil status lists orders in every status.
func NewListOrdersQuery(actor ports.AccessClaims, status *order.Status, page Page) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{
		actor:  actor,
		status: status,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Page() Page {
	return q.page
}

// GetOrderQuery reads one order.
type GetOrderQuery struct {
	actor   ports.AccessClaims
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor ports.AccessClaims, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
