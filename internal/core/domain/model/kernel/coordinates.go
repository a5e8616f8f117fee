package kernel

import (
	"errors"
	"fmt"
	"math"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when a zero value Coordinates is used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a WGS84 latitude/longitude pair. Delivery addresses and vehicle
// positions either carry both values or none, so optional positions are *Coordinates.
type Coordinates struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates validates latitude in [-90, 90] and longitude in [-180, 180].
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// NewOptionalCoordinates builds coordinates from a nullable pair. Both values must be
// present or both absent.
func NewOptionalCoordinates(latitude, longitude *float64) (*Coordinates, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"coordinates", errors.New("latitude and longitude must be provided together"))
	}

	c, err := NewCoordinates(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports whether the coordinates were created through NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.latitude, c.longitude)
}

// SplitCoordinates returns the nullable pair stored in the database.
func SplitCoordinates(c *Coordinates) (*float64, *float64) {
	if c == nil {
		return nil, nil
	}
	lat, long := c.latitude, c.longitude
	return &lat, &long
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < minLatitude || latitude > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < minLongitude || longitude > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	c.longitude = longitude
	return nil
}
