package http

import (
	"fmt"
	"strings"
	"time"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const claimsKey = "fueltrack.claims"

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// ok is false when the header is absent.
func bearerToken(c echo.Context) (token string, ok bool, err error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false, nil
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", true, fmt.Errorf("%w: malformed authorization header", errs.ErrUnauthorized)
	}
	return strings.TrimSpace(token), true, nil
}

// Authenticate rejects requests without a valid access token and stores the token's
// claims on the context.
func Authenticate(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return authenticate(issuer, false)
}

// OptionalAuthenticate lets anonymous requests through but still rejects a bad token.
func OptionalAuthenticate(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return authenticate(issuer, true)
}

func authenticate(issuer ports.TokenIssuer, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, present, err := bearerToken(c)
			if err != nil {
				return err
			}
			if !present {
				if optional {
					return next(c)
				}
				return fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized)
			}

			claims, err := issuer.ParseAccessToken(token)
			if err != nil {
				return err
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFrom(c)
			if err != nil {
				return err
			}
			if err = claims.Require(roles...); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) (ports.AccessClaims, error) {
	claims, ok := c.Get(claimsKey).(ports.AccessClaims)
	if !ok {
		return ports.AccessClaims{}, fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized)
	}
	return claims, nil
}

func optionalClaimsFrom(c echo.Context) *ports.AccessClaims {
	claims, ok := c.Get(claimsKey).(ports.AccessClaims)
	if !ok {
		return nil
	}
	return &claims
}

// AccessLog logs one line per request with the caller's identity when known.
func AccessLog(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: logRequest(logger),
	})
}

func logRequest(logger *zap.Logger) func(echo.Context, middleware.RequestLoggerValues) error {
	return func(c echo.Context, v middleware.RequestLoggerValues) error {
		fields := []zap.Field{
			zap.String("method", v.Method),
			zap.String("uri", v.URI),
			zap.Int("status", v.Status),
			zap.Duration("latency", v.Latency.Round(time.Microsecond)),
			zap.String("remote_ip", v.RemoteIP),
		}
		if claims := optionalClaimsFrom(c); claims != nil {
			fields = append(fields, zap.String("user", claims.Email), zap.Stringer("role", claims.Role))
		}
		if v.Error != nil {
			fields = append(fields, zap.Error(v.Error))
		}
		logger.Info("request", fields...)
		return nil
	}
}
