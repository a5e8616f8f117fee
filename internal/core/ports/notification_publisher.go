package ports

import (
	"context"

	"fueltrack/internal/core/domain/model/notification"
)

// NotificationPublisher delivers stored notifications to external subscribers.
// Publishing happens after the storing transaction commits, so a failure never
// loses the notification itself.
type NotificationPublisher interface {
	Publish(ctx context.Context, notifications ...*notification.Notification) error
}
