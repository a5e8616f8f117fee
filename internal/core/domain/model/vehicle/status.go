package vehicle

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Status represents the availability of a vehicle.
//
// Assignment moves Available -> InUse and release moves it back. The remaining
// transitions are administrative:
//
//	Available ⇄ Maintenance
//	Available, Maintenance ──> OutOfService ──> Available
type Status int

const (
	Unknown Status = iota
	Available
	InUse
	Maintenance
	OutOfService
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Available:    "Available",
		InUse:        "InUse",
		Maintenance:  "Maintenance",
		OutOfService: "OutOfService",
	}
}

// getAdministrativeTransitions lists status changes an administrator may request.
func getAdministrativeTransitions() map[Status][]Status {
	//nolint:exhaustive // InUse is only left through release
	return map[Status][]Status{
		Available:    {Maintenance, OutOfService},
		Maintenance:  {Available, OutOfService},
		OutOfService: {Available},
	}
}

// ParseStatus resolves a status from its name.
func ParseStatus(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if s != Unknown && str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid vehicle status", name))
}

func (s Status) Validate() error {
	if s < Available || s > OutOfService {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) canChangeAdministrativelyTo(to Status) bool {
	for _, next := range getAdministrativeTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}
