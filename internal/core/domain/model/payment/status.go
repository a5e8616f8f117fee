package payment

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Status represents the processing state of a payment.
//
// State transitions:
//
//	Pending ──> Completed ──> Refunded
//	   │
//	   └──────> Failed
//
// Failed and Refunded are terminal.
type Status int

const (
	Unknown Status = iota
	Pending
	Completed
	Failed
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
		Refunded:  "Refunded",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:   {Completed, Failed},
		Completed: {Refunded},
	}
}

// ParseStatus resolves a status from its name.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", name))
}

func (s Status) Validate() error {
	if s < Pending || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == Failed || s == Refunded
}

func (s Status) TransitionTo(to Status) (Status, error) {
	for _, next := range getTransitions()[s] {
		if next == to {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("payment", s, to)
}
