package queries

import (
	"errors"

	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery lists the caller's notifications, newest first.
type ListNotificationsQuery struct {
	actor      ports.AccessClaims
	unreadOnly bool
	page       Page

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(actor ports.AccessClaims, unreadOnly bool, page Page) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{
		actor:      actor,
		unreadOnly: unreadOnly,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Actor() ports.AccessClaims {
	return q.actor
}

func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q ListNotificationsQuery) Page() Page {
	return q.page
}
