// Package notificationrepo persists notification aggregates with GORM.
package notificationrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
)

// NotificationDTO is the row of the notifications table.
type NotificationDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UserID         int64
	Title          string
	Message        string
	Type           int
	IsRead         bool
	RelatedOrderID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:             aggregate.ID().Int64(),
		UserID:         aggregate.UserID().Int64(),
		Title:          aggregate.Title(),
		Message:        aggregate.Message(),
		Type:           int(aggregate.Type()),
		IsRead:         aggregate.IsRead(),
		RelatedOrderID: kernel.RawID(aggregate.RelatedOrderID()),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(entity, notification.State{
		UserID:         kernel.ID(dto.UserID),
		Title:          dto.Title,
		Message:        dto.Message,
		Type:           notification.Type(dto.Type),
		IsRead:         dto.IsRead,
		RelatedOrderID: kernel.OptionalID(dto.RelatedOrderID),
	})
}
