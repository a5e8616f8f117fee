// Package userrepo persists user aggregates with GORM.
package userrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID                    int64 `gorm:"primaryKey;autoIncrement"`
	FirstName             string
	LastName              string
	Email                 string
	PasswordHash          string
	Phone                 *string
	Role                  int
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:                    aggregate.ID().Int64(),
		FirstName:             aggregate.FirstName(),
		LastName:              aggregate.LastName(),
		Email:                 aggregate.Email(),
		PasswordHash:          aggregate.PasswordHash(),
		Phone:                 aggregate.Phone(),
		Role:                  int(aggregate.Role()),
		RefreshToken:          aggregate.RefreshToken(),
		RefreshTokenExpiresAt: aggregate.RefreshTokenExpiresAt(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(entity, user.State{
		FirstName:             dto.FirstName,
		LastName:              dto.LastName,
		Email:                 dto.Email,
		PasswordHash:          dto.PasswordHash,
		Phone:                 dto.Phone,
		Role:                  user.Role(dto.Role),
		RefreshToken:          dto.RefreshToken,
		RefreshTokenExpiresAt: dto.RefreshTokenExpiresAt,
	})
}
