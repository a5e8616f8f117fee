package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification aggregates.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error

	Update(ctx context.Context, aggregate *notification.Notification) error

	Get(ctx context.Context, id kernel.ID) (*notification.Notification, error)
}
