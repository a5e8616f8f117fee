package kernel

import (
	"errors"
	"time"
)

// ErrEntityAlreadyPersisted is returned when a repository tries to assign a second identity
// to an entity that already has one.
var ErrEntityAlreadyPersisted = errors.New("entity already has an identity")

// Entity carries the identity and audit timestamps every aggregate shares.
// A freshly constructed aggregate is transient (ID 0) until its repository
// stores it and calls MarkPersisted.
type Entity struct {
	id        ID
	createdAt time.Time
	updatedAt time.Time
}

// RestoreEntity rebuilds the identity of an aggregate loaded from storage.
func RestoreEntity(id ID, createdAt, updatedAt time.Time) (Entity, error) {
	if err := id.Validate(); err != nil {
		return Entity{}, err
	}
	return Entity{id: id, createdAt: createdAt, updatedAt: updatedAt}, nil
}

// ID returns the store-assigned identifier, or 0 for a transient entity.
func (e *Entity) ID() ID {
	return e.id
}

// CreatedAt returns the creation timestamp.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the timestamp of the last stored change.
func (e *Entity) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsTransient reports whether the entity has not been stored yet.
func (e *Entity) IsTransient() bool {
	return e.id == 0
}

// MarkPersisted records the identity and timestamps produced by an insert.
func (e *Entity) MarkPersisted(id ID, createdAt, updatedAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !e.IsTransient() {
		return ErrEntityAlreadyPersisted
	}
	e.id = id
	e.createdAt = createdAt
	e.updatedAt = updatedAt
	return nil
}

// Touch records the timestamp of an update written by a repository.
func (e *Entity) Touch(updatedAt time.Time) {
	e.updatedAt = updatedAt
}
