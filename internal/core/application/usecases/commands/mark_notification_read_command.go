package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand marks one of the caller's notifications read.
type MarkNotificationReadCommand struct {
	actor          ports.AccessClaims
	notificationID kernel.ID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(
	actor ports.AccessClaims,
	notificationID kernel.ID,
) (MarkNotificationReadCommand, error) {
	if err := errors.Join(actor.Validate(), notificationID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c MarkNotificationReadCommand) NotificationID() kernel.ID {
	return c.notificationID
}
