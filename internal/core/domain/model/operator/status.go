package operator

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Status represents the availability of an operator (driver).
//
// Assignment moves Available -> OnDelivery and release moves it back.
// Available ⇄ OffDuty is administrative.
type Status int

const (
	Unknown Status = iota
	Available
	OnDelivery
	OffDuty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Available:  "Available",
		OnDelivery: "OnDelivery",
		OffDuty:    "OffDuty",
	}
}

// ParseStatus resolves a status from its name.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid operator status", name))
}

func (s Status) Validate() error {
	if s < Available || s > OffDuty {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid operator status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
