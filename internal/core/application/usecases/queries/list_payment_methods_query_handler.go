package queries

import (
	"context"
	"time"

	"fueltrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type ListPaymentMethodsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentMethodsQueryHandler(db *gorm.DB) ListPaymentMethodsQueryHandler {
	return ListPaymentMethodsQueryHandler{db: db}
}

func (h ListPaymentMethodsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentMethodsQuery,
) ([]PaymentMethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			card_holder_name,
			last_four_digits,
			card_type,
			expiry_date,
			is_default,
			created_at
		FROM payment_methods
		WHERE user_id = ?
		ORDER BY is_default DESC, id
	`, query.Actor().UserID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]PaymentMethodResponse, 0)
	for rows.Next() {
		var (
			method PaymentMethodResponse
			id     int64
			expiry time.Time
		)
		err = rows.Scan(
			&id,
			&method.CardHolderName,
			&method.LastFourDigits,
			&method.CardType,
			&expiry,
			&method.IsDefault,
			&method.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		method.ID = kernel.ID(id)
		method.ExpiryDate = expiry.UTC()
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
