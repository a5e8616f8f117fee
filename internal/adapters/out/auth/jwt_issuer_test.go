package auth_test

import (
	"strings"
	"testing"
	"time"

	"fueltrack/internal/adapters/out/auth"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func newIssuer(t *testing.T) *auth.JWTIssuer {
	t.Helper()
	issuer, err := auth.NewJWTIssuer(auth.JWTConfig{
		Secret:          secret,
		Issuer:          "fueltrack",
		Audience:        "fueltrack-clients",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	require.NoError(t, err)
	return issuer
}

func TestNewJWTIssuer_RejectsShortSecret(t *testing.T) {
	_, err := auth.NewJWTIssuer(auth.JWTConfig{Secret: "short", AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour})

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := newIssuer(t)
	now := time.Now()
	claims := ports.AccessClaims{UserID: 42, Email: "ana@example.com", Role: user.Provider}

	token, err := issuer.IssueAccessToken(claims, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), token.ExpiresAt, time.Second)

	parsed, err := issuer.ParseAccessToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestJWTIssuer_ParseAccessToken_Rejects(t *testing.T) {
	issuer := newIssuer(t)
	claims := ports.AccessClaims{UserID: 1, Email: "a@example.com", Role: user.Admin}

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.IssueAccessToken(claims, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token.Value)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := auth.NewJWTIssuer(auth.JWTConfig{
			Secret:          strings.Repeat("x", 32),
			Issuer:          "fueltrack",
			Audience:        "fueltrack-clients",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour,
		})
		require.NoError(t, err)
		token, err := other.IssueAccessToken(claims, time.Now())
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token.Value)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other, err := auth.NewJWTIssuer(auth.JWTConfig{
			Secret:          secret,
			Issuer:          "fueltrack",
			Audience:        "someone-else",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour,
		})
		require.NoError(t, err)
		token, err := other.IssueAccessToken(claims, time.Now())
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token.Value)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseAccessToken("not-a-jwt")
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestJWTIssuer_NewRefreshToken(t *testing.T) {
	issuer := newIssuer(t)
	now := time.Now()

	first, err := issuer.NewRefreshToken(now)
	require.NoError(t, err)
	second, err := issuer.NewRefreshToken(now)
	require.NoError(t, err)

	assert.NotEqual(t, first.Value, second.Value)
	assert.Len(t, first.Value, 43)
	assert.Equal(t, now.Add(7*24*time.Hour), first.ExpiresAt)
}
