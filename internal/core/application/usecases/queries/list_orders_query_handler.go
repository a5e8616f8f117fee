package queries

import (
	"context"
	"errors"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)
	if !query.Actor().Role.IsStaff() {
		tx = tx.Where("user_id = ?", query.Actor().UserID.Int64())
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", int(*status))
	}

	var rows []orderRow
	err := tx.Order("created_at DESC, id DESC").
		Limit(query.Page().Limit()).
		Offset(query.Page().Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.response())
	}
	return orders, nil
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Table("orders").
		Select(orderColumns).
		Where("id = ?", query.OrderID().Int64()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	response := row.response()
	if err = query.Actor().RequireOwnerOr(response.UserID, user.Admin, user.Provider); err != nil {
		return OrderResponse{}, err
	}
	return response, nil
}
