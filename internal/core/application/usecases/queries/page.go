// Package queries contains the read side of the application. Query handlers read
// straight from the database into response models and never load aggregates.
package queries

import (
	"fueltrack/internal/pkg/errs"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page bounds a list query. A zero limit selects DefaultPageLimit.
type Page struct {
	limit  int
	offset int
}

func NewPage(limit, offset int) (Page, error) {
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return Page{limit: limit, offset: offset}, nil
}

// Limit returns the page size, falling back to DefaultPageLimit for a zero Page.
func (p Page) Limit() int {
	if p.limit == 0 {
		return DefaultPageLimit
	}
	return p.limit
}

func (p Page) Offset() int {
	return p.offset
}
