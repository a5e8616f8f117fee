package commands

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
)

// AuthTokens is the result of a successful login or refresh.
type AuthTokens struct {
	UserID                kernel.ID
	Email                 string
	Role                  user.Role
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// issueTokens signs a new access token for u and rotates its refresh token.
// The caller persists u.
func issueTokens(issuer ports.TokenIssuer, u *user.User, now time.Time) (AuthTokens, error) {
	access, err := issuer.IssueAccessToken(ports.AccessClaims{
		UserID: u.ID(),
		Email:  u.Email(),
		Role:   u.Role(),
	}, now)
	if err != nil {
		return AuthTokens{}, err
	}

	refresh, err := issuer.NewRefreshToken(now)
	if err != nil {
		return AuthTokens{}, err
	}

	if err := u.IssueRefreshToken(refresh.Value, refresh.ExpiresAt); err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		UserID:                u.ID(),
		Email:                 u.Email(),
		Role:                  u.Role(),
		AccessToken:           access.Value,
		AccessTokenExpiresAt:  access.ExpiresAt,
		RefreshToken:          refresh.Value,
		RefreshTokenExpiresAt: refresh.ExpiresAt,
	}, nil
}
