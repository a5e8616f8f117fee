// Package pgerr translates constraint violations reported by PostgreSQL into the
// errors of internal/pkg/errs. The driver error stays reachable through errors.As
// but its text, including constraint names and SQLSTATE, is not part of Error().
package pgerr

import (
	"errors"
	"fmt"

	"fueltrack/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// referencedBy names the entity a foreign key constraint points at.
var referencedBy = map[string]string{
	"fk_orders_user":             "user",
	"fk_orders_vehicle":          "vehicle",
	"fk_orders_operator":         "operator",
	"fk_payment_methods_user":    "user",
	"fk_payments_order":          "order",
	"fk_payments_payment_method": "payment method",
	"fk_notifications_user":      "user",
	"fk_notifications_order":     "order",
}

// Subject describes the row a statement was writing.
type Subject struct {
	Entity string
	ID     any

	// Field and Value name the unique column the row could collide on.
	Field string
	Value any
}

// Write translates the error of an INSERT or UPDATE.
//
//   - unique_violation becomes errs.ConflictError
//   - foreign_key_violation becomes errs.ObjectNotFoundError for the missing parent
//   - check_violation becomes errs.ValueIsInvalidError
//
// Any other error is wrapped with the entity name.
func (s Subject) Write(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return translated(errs.NewConflictError(s.Entity, s.Field, s.Value), pgErr)
		case pgerrcode.ForeignKeyViolation:
			parent, ok := referencedBy[pgErr.ConstraintName]
			if !ok {
				parent = "referenced row"
			}
			return translated(errs.NewObjectNotFoundError(parent, "referenced by "+s.Entity), pgErr)
		case pgerrcode.CheckViolation:
			return translated(errs.NewValueIsInvalidError(s.Entity), pgErr)
		}
	}

	return fmt.Errorf("write %s: %w", s.Entity, err)
}

// Delete translates the error of a DELETE. A foreign_key_violation means rows still
// reference the deleted one and becomes errs.DependencyExistsError.
func (s Subject) Delete(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return translated(errs.NewDependencyExistsError(s.Entity, s.ID, pgErr.TableName), pgErr)
	}

	return fmt.Errorf("delete %s: %w", s.Entity, err)
}

// constraintError pairs an application error with the driver error it was
// translated from. Only the application error is printed.
type constraintError struct {
	err    error
	driver *pgconn.PgError
}

func translated(err error, driver *pgconn.PgError) error {
	return &constraintError{err: err, driver: driver}
}

func (e *constraintError) Error() string {
	return e.err.Error()
}

func (e *constraintError) Unwrap() []error {
	return []error{e.err, e.driver}
}
