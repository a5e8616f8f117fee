package queries

import (
	"context"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns the profile without credentials or refresh token.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	if err := query.Actor().RequireOwnerOr(query.UserID(), user.Admin); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone,
			role,
			created_at,
			updated_at
		FROM users
		WHERE id = ?
	`, query.UserID().Int64()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	var row userRow
	err = rows.Scan(
		&row.ID,
		&row.FirstName,
		&row.LastName,
		&row.Email,
		&row.Phone,
		&row.Role,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return UserResponse{}, err
	}

	return row.response(), nil
}
