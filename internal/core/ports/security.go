package ports

import (
	"fmt"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns errs.ErrInvalidCredentials when password does not match hash.
	Compare(hash, password string) error
}

// AccessClaims is what an access token says about its bearer.
type AccessClaims struct {
	UserID kernel.ID
	Email  string
	Role   user.Role
}

// Validate checks that the claims identify a user with a known role.
func (c AccessClaims) Validate() error {
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	return c.Role.Validate()
}

// Require returns errs.ErrForbidden unless the bearer has one of roles.
func (c AccessClaims) Require(roles ...user.Role) error {
	if !c.Role.In(roles...) {
		return fmt.Errorf("%w: role %s may not perform this operation", errs.ErrForbidden, c.Role)
	}
	return nil
}

// RequireOwnerOr returns errs.ErrForbidden unless the bearer is ownerID or has one of roles.
func (c AccessClaims) RequireOwnerOr(ownerID kernel.ID, roles ...user.Role) error {
	if c.UserID == ownerID || c.Role.In(roles...) {
		return nil
	}
	return fmt.Errorf("%w: resource belongs to another user", errs.ErrForbidden)
}

// IssuedToken is a signed token and the moment it stops being accepted.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	// IssueAccessToken signs a short-lived access token for claims.
	IssueAccessToken(claims AccessClaims, now time.Time) (IssuedToken, error)

	// ParseAccessToken verifies token and returns its claims, or errs.ErrUnauthorized.
	ParseAccessToken(token string) (AccessClaims, error)

	// NewRefreshToken generates an opaque refresh token.
	NewRefreshToken(now time.Time) (IssuedToken, error)
}

// CardCipher encrypts card numbers before they are stored.
type CardCipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(encoded string) (string, error)
}
