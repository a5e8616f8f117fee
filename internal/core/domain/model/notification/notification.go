package notification

import (
	"errors"
	"strings"
	"unicode/utf8"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 1000
)

// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a message to a user. The related order, when present, is cleared
// if the order is deleted.
type Notification struct {
	kernel.Entity

	userID         kernel.ID
	title          string
	message        string
	notifType      Type
	isRead         bool
	relatedOrderID *kernel.ID

	guard guard.ConstructorGuard
}

// State carries the persisted fields of a notification for RestoreNotification.
type State struct {
	UserID         kernel.ID
	Title          string
	Message        string
	Type           Type
	IsRead         bool
	RelatedOrderID *kernel.ID
}

// NewNotification creates an unread notification for userID.
func NewNotification(userID kernel.ID, title, message string, notifType Type, relatedOrderID *kernel.ID) (*Notification, error) {
	n := &Notification{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		n.setUserID(userID),
		n.setTitle(title),
		n.setMessage(message),
		n.setType(notifType),
		n.setRelatedOrderID(relatedOrderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(entity kernel.Entity, state State) (*Notification, error) {
	n := &Notification{
		Entity: entity,
		isRead: state.IsRead,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		n.setUserID(state.UserID),
		n.setTitle(state.Title),
		n.setMessage(state.Message),
		n.setType(state.Type),
		n.setRelatedOrderID(state.RelatedOrderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) UserID() kernel.ID {
	return n.userID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() Type {
	return n.notifType
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) RelatedOrderID() *kernel.ID {
	return n.relatedOrderID
}

// MarkRead flags the notification as read. It is idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	n.userID = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if l := utf8.RuneCountInString(title); l > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", l, 1, maxTitleLength)
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if l := utf8.RuneCountInString(message); l > maxMessageLength {
		return errs.NewValueIsOutOfRangeError("message length", l, 1, maxMessageLength)
	}
	n.message = message
	return nil
}

func (n *Notification) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	n.notifType = t
	return nil
}

func (n *Notification) setRelatedOrderID(id *kernel.ID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("related order id", err)
		}
	}
	n.relatedOrderID = id
	return nil
}
