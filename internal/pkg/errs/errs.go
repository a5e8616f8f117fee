package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrConflict             = errors.New("uniqueness conflict")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrResourceUnavailable  = errors.New("resource is unavailable")
	ErrDependencyExists     = errors.New("dependency exists")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRefreshTokenRejected = errors.New("refresh token rejected")
)

// sanitize keeps user supplied values on a single line inside error messages.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
			ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError reports a write that would break a uniqueness constraint.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
	Cause  error
}

func NewConflictError(entity, field string, value any) *ConflictError {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

func NewConflictErrorWithCause(entity, field string, value any, cause error) *ConflictError {
	return &ConflictError{Entity: entity, Field: field, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s with %s %s already exists", ErrConflict, e.Entity, e.Field, sanitize(e.Value))
	if e.Value == nil {
		msg = fmt.Sprintf("%s: %s %s must be unique", ErrConflict, e.Entity, e.Field)
	}
	return withCause(msg, e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError reports a status change the state machine does not allow.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity string, from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ResourceUnavailableError reports an attempt to assign a vehicle or operator that is busy,
// out of service or otherwise not eligible.
type ResourceUnavailableError struct {
	Resource string
	ID       any
	Reason   string
}

func NewResourceUnavailableError(resource string, id any, reason string) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource, ID: id, Reason: reason}
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s %s is %s", ErrResourceUnavailable, e.Resource, sanitize(e.ID), e.Reason)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// DependencyExistsError reports a delete blocked by a restrict rule.
type DependencyExistsError struct {
	Entity    string
	ID        any
	Dependent string
	Cause     error
}

func NewDependencyExistsError(entity string, id any, dependent string) *DependencyExistsError {
	return &DependencyExistsError{Entity: entity, ID: id, Dependent: dependent}
}

func NewDependencyExistsErrorWithCause(entity string, id any, dependent string, cause error) *DependencyExistsError {
	return &DependencyExistsError{Entity: entity, ID: id, Dependent: dependent, Cause: cause}
}

func (e *DependencyExistsError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s is still referenced by %s", ErrDependencyExists, e.Entity, sanitize(e.ID), e.Dependent),
		e.Cause,
	)
}

func (e *DependencyExistsError) Unwrap() error {
	return ErrDependencyExists
}
