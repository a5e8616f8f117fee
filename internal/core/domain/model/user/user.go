package user

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
	maxPhoneLength = 20
)

var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrPasswordHashIsRequired is returned when a user is built without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// User is an account of the system: a client ordering fuel, a provider operating the
// fleet, or an administrator. Users own orders, payment methods and notifications.
//
// Business rules:
//   - First and last name are required, at most 100 characters
//   - Email is a valid address of at most 255 characters, stored lower-cased; it is
//     unique across users (enforced by the store)
//   - The password is only ever held as a hash
//   - At most one refresh token is active at a time; issuing a new one replaces it
type User struct {
	kernel.Entity

	firstName    string
	lastName     string
	email        string
	passwordHash string
	phone        *string
	role         Role

	// refreshToken and refreshTokenExpiresAt are both set or both nil
	refreshToken          *string
	refreshTokenExpiresAt *time.Time

	guard guard.ConstructorGuard
}

// State carries the persisted fields of a user for RestoreUser.
type State struct {
	FirstName             string
	LastName              string
	Email                 string
	PasswordHash          string
	Phone                 *string
	Role                  Role
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
}

// NewUser creates a user account. The password must already be hashed by the caller.
//
// Example:
//
//	hash, _ := hasher.Hash("s3cret!")
//	u, err := user.NewUser("Juan", "Pérez", "juan@example.com", hash, nil, user.Client)
func NewUser(firstName, lastName, email, passwordHash string, phone *string, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setPhone(phone),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(entity kernel.Entity, state State) (*User, error) {
	u := &User{
		Entity: entity,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		u.setFirstName(state.FirstName),
		u.setLastName(state.LastName),
		u.setEmail(state.Email),
		u.setPasswordHash(state.PasswordHash),
		u.setPhone(state.Phone),
		u.setRole(state.Role),
	); err != nil {
		return nil, err
	}

	if state.RefreshToken != nil && state.RefreshTokenExpiresAt != nil {
		u.refreshToken = state.RefreshToken
		u.refreshTokenExpiresAt = state.RefreshTokenExpiresAt
	}

	return u, nil
}

// NormalizeEmail returns the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Phone() *string {
	return u.phone
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) RefreshToken() *string {
	return u.refreshToken
}

func (u *User) RefreshTokenExpiresAt() *time.Time {
	return u.refreshTokenExpiresAt
}

// IssueRefreshToken stores a new refresh token, replacing any previous one.
func (u *User) IssueRefreshToken(token string, expiresAt time.Time) error {
	if strings.TrimSpace(token) == "" {
		return errs.NewValueIsRequiredError("refresh token")
	}

	exp := expiresAt.UTC()
	u.refreshToken = &token
	u.refreshTokenExpiresAt = &exp
	return nil
}

// CheckRefreshToken verifies that token is the active refresh token and has not expired.
func (u *User) CheckRefreshToken(token string, now time.Time) error {
	if u.refreshToken == nil || u.refreshTokenExpiresAt == nil {
		return fmt.Errorf("%w: no active refresh token", errs.ErrRefreshTokenRejected)
	}
	if subtle.ConstantTimeCompare([]byte(*u.refreshToken), []byte(token)) != 1 {
		return fmt.Errorf("%w: token mismatch", errs.ErrRefreshTokenRejected)
	}
	if !now.Before(*u.refreshTokenExpiresAt) {
		return fmt.Errorf("%w: token expired", errs.ErrRefreshTokenRejected)
	}
	return nil
}

// RevokeRefreshToken clears the active refresh token. Revoking twice is a no-op.
func (u *User) RevokeRefreshToken() {
	u.refreshToken = nil
	u.refreshTokenExpiresAt = nil
}

func (u *User) setFirstName(name string) error {
	return setName(&u.firstName, "first name", name)
}

func (u *User) setLastName(name string) error {
	return setName(&u.lastName, "last name", name)
}

func setName(dst *string, param, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxNameLength)
	}
	*dst = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(email); n > maxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", n, 1, maxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}

	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setPhone(phone *string) error {
	if phone == nil {
		u.phone = nil
		return nil
	}

	p := strings.TrimSpace(*phone)
	if p == "" {
		u.phone = nil
		return nil
	}
	if n := utf8.RuneCountInString(p); n > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, 1, maxPhoneLength)
	}
	u.phone = &p
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
