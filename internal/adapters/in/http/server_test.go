package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// staticIssuer accepts a fixed set of tokens.
type staticIssuer map[string]ports.AccessClaims

func (s staticIssuer) IssueAccessToken(claims ports.AccessClaims, now time.Time) (ports.IssuedToken, error) {
	return ports.IssuedToken{Value: claims.Email, ExpiresAt: now.Add(time.Hour)}, nil
}

func (s staticIssuer) ParseAccessToken(token string) (ports.AccessClaims, error) {
	claims, ok := s[token]
	if !ok {
		return ports.AccessClaims{}, fmt.Errorf("%w: unknown token", errs.ErrUnauthorized)
	}
	return claims, nil
}

func (s staticIssuer) NewRefreshToken(now time.Time) (ports.IssuedToken, error) {
	return ports.IssuedToken{Value: "refresh", ExpiresAt: now.Add(24 * time.Hour)}, nil
}

var testIssuer = staticIssuer{
	"admin":    {UserID: 1, Email: "admin@fueltrack.test", Role: user.Admin},
	"provider": {UserID: 2, Email: "provider@fueltrack.test", Role: user.Provider},
	"client":   {UserID: 3, Email: "client@fueltrack.test", Role: user.Client},
}

func newTestEcho(t *testing.T, ping func(context.Context) error) *echo.Echo {
	t.Helper()

	spec, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	NewServer(CommandHandlers{}, QueryHandlers{}, testIssuer, spec, ping).Register(e)
	return e
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "FuelTrack API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/orders/{id}/assign"))
	assert.NotNil(t, doc.Paths.Find("/notifications/{id}/read"))
	assert.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
}

func TestServer_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		e := newTestEcho(t, func(context.Context) error { return nil })
		rec := serve(e, http.MethodGet, "/health", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		e := newTestEcho(t, func(context.Context) error { return errors.New("connection refused") })
		rec := serve(e, http.MethodGet, "/health", "", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unhealthy"}`, rec.Body.String())
	})
}

func TestServer_OpenAPIDocument(t *testing.T) {
	e := newTestEcho(t, nil)
	rec := serve(e, http.MethodGet, "/api/openapi.json", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestServer_Authentication(t *testing.T) {
	e := newTestEcho(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic YWRtaW46c2VjcmV0"},
		{"empty bearer", "Bearer "},
		{"unknown token", "Bearer forged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestServer_RoleGuards(t *testing.T) {
	e := newTestEcho(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{"client lists vehicles", http.MethodGet, "/api/v1/vehicles", "client"},
		{"client lists operators", http.MethodGet, "/api/v1/operators", "client"},
		{"provider creates vehicle", http.MethodPost, "/api/v1/vehicles", "provider"},
		{"provider renews license", http.MethodPut, "/api/v1/operators/1/license", "provider"},
		{"client assigns order", http.MethodPost, "/api/v1/orders/1/assign", "client"},
		{"client dispatches order", http.MethodPost, "/api/v1/orders/1/dispatch", "client"},
		{"provider deletes order", http.MethodDelete, "/api/v1/orders/1", "provider"},
		{"client completes payment", http.MethodPost, "/api/v1/payments/1/complete", "client"},
		{"provider refunds payment", http.MethodPost, "/api/v1/payments/1/refund", "provider"},
		{"provider deletes user", http.MethodDelete, "/api/v1/users/3", "provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.token, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestServer_RejectsMalformedInput(t *testing.T) {
	e := newTestEcho(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		body   string
	}{
		{"non-numeric order id", http.MethodGet, "/api/v1/orders/abc", "client", ""},
		{"zero order id", http.MethodPost, "/api/v1/orders/0/cancel", "client", ""},
		{"unknown status filter", http.MethodGet, "/api/v1/orders?status=Lost", "client", ""},
		{"limit above maximum", http.MethodGet, "/api/v1/orders?limit=500", "client", ""},
		{"negative offset", http.MethodGet, "/api/v1/notifications?offset=-1", "client", ""},
		{"unread flag not bool", http.MethodGet, "/api/v1/notifications?unreadOnly=maybe", "client", ""},
		{"unknown vehicle status", http.MethodGet, "/api/v1/vehicles?status=Flying", "provider", ""},
		{"malformed body", http.MethodPost, "/api/v1/orders", "client", `{"fuelType":`},
		{
			"unknown fuel type",
			http.MethodPost, "/api/v1/orders", "client",
			`{"fuelType":"Kerosene","quantity":"10","pricePerLiter":"1.50","deliveryAddress":"1 Main St"}`,
		},
		{
			"non-numeric quantity",
			http.MethodPost, "/api/v1/orders", "client",
			`{"fuelType":"Diesel","quantity":"ten","pricePerLiter":"1.50","deliveryAddress":"1 Main St"}`,
		},
		{
			"latitude out of range",
			http.MethodPut, "/api/v1/vehicles/1/location", "provider",
			`{"latitude":91,"longitude":10}`,
		},
		{"unknown operator status", http.MethodPut, "/api/v1/operators/1/status", "admin", `{"status":"Asleep"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.token, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusBadRequest, body.Code)
		})
	}
}

func TestRequireRoles_WithoutAuthenticate(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireRoles(user.Admin))

	rec := serve(e, http.MethodGet, "/admin", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthenticate(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	e.GET("/whoami", func(c echo.Context) error {
		claims := optionalClaimsFrom(c)
		if claims == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, claims.Role.String())
	}, OptionalAuthenticate(testIssuer))

	t.Run("anonymous", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/whoami", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("authenticated", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/whoami", "admin", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Admin", rec.Body.String())
	})

	t.Run("bad token is still rejected", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/whoami", "forged", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestClaimsFrom(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := claimsFrom(c)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	want := ports.AccessClaims{UserID: kernel.ID(9), Email: "ops@fueltrack.test", Role: user.Provider}
	c.Set(claimsKey, want)
	got, err := claimsFrom(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
