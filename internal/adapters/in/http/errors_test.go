package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fueltrack/internal/adapters/out/postgres/pgerr"
	"fueltrack/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid value", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", 7), http.StatusNotFound},
		{"wrapped conflict", fmt.Errorf("save: %w", errs.ErrConflict), http.StatusConflict},
		{"transition", errs.ErrInvalidTransition, http.StatusConflict},
		{"unavailable", errs.ErrResourceUnavailable, http.StatusConflict},
		{"dependency", errs.ErrDependencyExists, http.StatusConflict},
		{"unauthorized", errs.ErrUnauthorized, http.StatusUnauthorized},
		{"credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErrorHandler_WritesMappedStatus(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	e.GET("/orders", func(echo.Context) error {
		return errs.NewObjectNotFoundError("order", 42)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Contains(t, body.Message, "object not found")
}

func TestErrorHandler_HidesConstraintDetails(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	e.POST("/auth/register", func(echo.Context) error {
		return pgerr.Subject{Entity: "user", Field: "email", Value: "a@b.co"}.Write(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			Message:        `duplicate key value violates unique constraint "ux_users_email"`,
			ConstraintName: "ux_users_email",
		})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "uniqueness conflict: user with email a@b.co already exists", body.Message)
	assert.NotContains(t, rec.Body.String(), "SQLSTATE")
	assert.NotContains(t, rec.Body.String(), "ux_users_email")
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.New(core))
	e.GET("/orders", func(echo.Context) error {
		return errors.New("dial tcp 10.0.0.5:5432: connection refused")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "internal server error")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "request failed", logs.All()[0].Message)
}

func TestErrorHandler_EchoErrors(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body.Message)
}
