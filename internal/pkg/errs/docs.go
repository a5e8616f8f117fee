// Package errs provides standardized error types for the fuel delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation failures and for the
// persistence and lifecycle failures the API reports to clients:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//   - ConflictError: a unique email, order number, license plate or license number is taken
//   - InvalidTransitionError: a status change the state machine does not allow
//   - ResourceUnavailableError: a vehicle or operator cannot be assigned
//   - DependencyExistsError: a delete is blocked by a restrict rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP adapter
// maps each sentinel to a response status.
package errs
