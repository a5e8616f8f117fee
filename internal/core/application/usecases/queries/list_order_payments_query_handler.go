package queries

import (
	"context"
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrderPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderPaymentsQueryHandler(db *gorm.DB) ListOrderPaymentsQueryHandler {
	return ListOrderPaymentsQueryHandler{db: db}
}

func (h ListOrderPaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var owner struct {
		UserID int64 `gorm:"column:user_id"`
	}
	err := db.Table("orders").Select("user_id").Where("id = ?", query.OrderID().Int64()).Take(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return nil, err
	}

	if err = query.Actor().RequireOwnerOr(kernel.ID(owner.UserID), user.Admin, user.Provider); err != nil {
		return nil, err
	}

	var rows []paymentRow
	err = db.Raw(`
		SELECT
			id,
			order_id,
			payment_method_id,
			amount,
			status,
			transaction_id,
			processed_at,
			created_at
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Int64()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.response())
	}
	return payments, nil
}
