package order

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Numeric values match the stored column.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of an order placed by a client.
	Pending

	// Confirmed means a vehicle and an operator were assigned.
	Confirmed

	// InTransit means the vehicle left with the fuel.
	InTransit

	// Delivered means the fuel was delivered. Terminal.
	Delivered

	// Cancelled means the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getTransitions lists, for every non-terminal status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {InTransit, Cancelled},
		InTransit: {Delivered, Cancelled},
	}
}

// ParseStatus resolves a status from its name, as used in query filters.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", name))
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows s -> to.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when s -> to is allowed, and an
// InvalidTransitionError naming both states otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError("order", s, to)
	}
	return to, nil
}

// Confirm moves Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(Confirmed)
}

// Dispatch moves Confirmed -> InTransit.
func (s Status) Dispatch() (Status, error) {
	return s.TransitionTo(InTransit)
}

// Deliver moves InTransit -> Delivered.
func (s Status) Deliver() (Status, error) {
	return s.TransitionTo(Delivered)
}

// Cancel moves any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
