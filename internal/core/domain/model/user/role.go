package user

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Role is the authorization role of a user. Numeric values match the stored column.
type Role int

const (
	UnknownRole Role = iota
	Admin
	Client
	Provider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Admin:       "Admin",
		Client:      "Client",
		Provider:    "Provider",
	}
}

// ParseRole resolves a role from its name.
func ParseRole(name string) (Role, error) {
	for r, str := range getRoleStrings() {
		if r != UnknownRole && str == name {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}

func (r Role) Validate() error {
	if r < Admin || r > Provider {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsStaff reports whether the role operates the fleet rather than ordering fuel.
func (r Role) IsStaff() bool {
	return r == Admin || r == Provider
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
