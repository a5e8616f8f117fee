package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minSecretLength = 32

// Claims is the payload of an access token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig configures the issuer.
type JWTConfig struct {
	Secret          string
	Issuer          string
	Audience        string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// JWTIssuer signs HS256 access tokens and generates opaque refresh tokens.
type JWTIssuer struct {
	secret []byte
	cfg    JWTConfig
	parser *jwt.Parser
}

func NewJWTIssuer(cfg JWTConfig) (*JWTIssuer, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("jwt secret length", len(cfg.Secret), minSecretLength, "unbounded")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("token ttl", errors.New("must be positive"))
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTIssuer{
		secret: []byte(cfg.Secret),
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
	}, nil
}

func (i *JWTIssuer) IssueAccessToken(claims ports.AccessClaims, now time.Time) (ports.IssuedToken, error) {
	if err := claims.UserID.Validate(); err != nil {
		return ports.IssuedToken{}, err
	}

	expiresAt := now.Add(i.cfg.AccessTokenTTL)
	registered := jwt.RegisteredClaims{
		Subject:   claims.UserID.String(),
		Issuer:    i.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}
	if i.cfg.Audience != "" {
		registered.Audience = jwt.ClaimStrings{i.cfg.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:            claims.Email,
		Role:             claims.Role.String(),
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return ports.IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// ParseAccessToken verifies signature, expiry, issuer and audience.
func (i *JWTIssuer) ParseAccessToken(token string) (ports.AccessClaims, error) {
	claims := &Claims{}
	parsed, err := i.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.AccessClaims{}, errs.ErrUnauthorized
	}

	rawID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ports.AccessClaims{}, errs.ErrUnauthorized
	}

	userID, err := kernel.NewID(rawID)
	if err != nil {
		return ports.AccessClaims{}, errs.ErrUnauthorized
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.AccessClaims{}, errs.ErrUnauthorized
	}

	return ports.AccessClaims{UserID: userID, Email: claims.Email, Role: role}, nil
}

// NewRefreshToken returns 32 random bytes, base64url encoded.
func (i *JWTIssuer) NewRefreshToken(now time.Time) (ports.IssuedToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return ports.IssuedToken{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return ports.IssuedToken{
		Value:     base64.RawURLEncoding.EncodeToString(buf),
		ExpiresAt: now.Add(i.cfg.RefreshTokenTTL),
	}, nil
}
