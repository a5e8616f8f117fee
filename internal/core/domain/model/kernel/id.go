package kernel

import (
	"strconv"

	"fueltrack/internal/pkg/errs"
)

// ID identifies a persisted entity. Identifiers are assigned by the store on insert,
// so any valid ID is strictly positive.
type ID int64

// NewID validates a raw identifier coming from a request or a foreign key.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identifier refers to a persisted entity.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OptionalID converts a nullable foreign key to its domain form.
func OptionalID(raw *int64) *ID {
	if raw == nil {
		return nil
	}
	id := ID(*raw)
	return &id
}

// RawID converts an optional domain identifier back to a nullable foreign key.
func RawID(id *ID) *int64 {
	if id == nil {
		return nil
	}
	raw := int64(*id)
	return &raw
}
