package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("notifications").
		Select("id, title, message, type, is_read, related_order_id, created_at").
		Where("user_id = ?", query.Actor().UserID.Int64())
	if query.UnreadOnly() {
		tx = tx.Where("is_read = ?", false)
	}

	var rows []notificationRow
	err := tx.Order("created_at DESC, id DESC").
		Limit(query.Page().Limit()).
		Offset(query.Page().Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]NotificationResponse, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.response())
	}
	return notifications, nil
}
