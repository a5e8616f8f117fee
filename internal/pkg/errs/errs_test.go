package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 123)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, 123, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("user", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: user 42 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 95, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 95, err.Value)
		assert.Equal(t, "value is out of range: 95 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("delivery address")

	assert.Equal(t, "value is required: delivery address", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestConflictError(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		err := errs.NewConflictError("vehicle", "license plate", "ABC-123")

		assert.Equal(t, "uniqueness conflict: vehicle with license plate ABC-123 already exists", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("without value", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewConflictErrorWithCause("user", "email", nil, cause)

		assert.Equal(t, "uniqueness conflict: user email must be unique (cause: duplicate key)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("order", stringer("Delivered"), stringer("Confirmed"))

	assert.Equal(t, "Delivered", err.From)
	assert.Equal(t, "Confirmed", err.To)
	assert.Equal(t, "invalid transition: order cannot move from Delivered to Confirmed", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestResourceUnavailableError(t *testing.T) {
	err := errs.NewResourceUnavailableError("vehicle", 7, "InUse")

	assert.Equal(t, "resource is unavailable: vehicle 7 is InUse", err.Error())
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
}

func TestDependencyExistsError(t *testing.T) {
	err := errs.NewDependencyExistsError("user", 3, "orders")

	assert.Equal(t, "dependency exists: user 3 is still referenced by orders", err.Error())
	require.ErrorIs(t, err, errs.ErrDependencyExists)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("assign order: %w", errs.NewResourceUnavailableError("operator", 1, "OffDuty"))
		require.ErrorIs(t, wrapped, errs.ErrResourceUnavailable)

		var target *errs.ResourceUnavailableError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "operator", target.Resource)
	})

	t.Run("joined errors keep every sentinel", func(t *testing.T) {
		joined := errors.Join(errs.NewValueIsRequiredError("brand"), errs.NewValueIsInvalidError("year"))
		require.ErrorIs(t, joined, errs.ErrValueIsRequired)
		require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	})
}
