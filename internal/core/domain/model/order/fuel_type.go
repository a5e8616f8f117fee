package order

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// FuelType is the kind of fuel an order requests.
type FuelType int

const (
	UnknownFuel FuelType = iota
	Gasoline
	Diesel
	Premium
)

func getFuelTypeStrings() map[FuelType]string {
	return map[FuelType]string{
		UnknownFuel: "Unknown",
		Gasoline:    "Gasoline",
		Diesel:      "Diesel",
		Premium:     "Premium",
	}
}

// ParseFuelType resolves a fuel type from its name.
func ParseFuelType(name string) (FuelType, error) {
	for f, str := range getFuelTypeStrings() {
		if f != UnknownFuel && str == name {
			return f, nil
		}
	}
	return UnknownFuel, errs.NewValueIsInvalidErrorWithCause("fuel type", fmt.Errorf("%q is not a valid fuel type", name))
}

func (f FuelType) Validate() error {
	if f < Gasoline || f > Premium {
		return errs.NewValueIsInvalidErrorWithCause("fuel type", fmt.Errorf("%d is not a valid fuel type", f))
	}
	return nil
}

func (f FuelType) String() string {
	if str, ok := getFuelTypeStrings()[f]; ok {
		return str
	}
	return "Unknown"
}
