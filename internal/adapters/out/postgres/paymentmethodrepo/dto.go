// Package paymentmethodrepo persists payment method aggregates with GORM.
package paymentmethodrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/paymentmethod"
)

// PaymentMethodDTO is the row of the payment_methods table. The card number is only
// ever stored encrypted.
type PaymentMethodDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	UserID              int64
	CardHolderName      string
	LastFourDigits      string
	CardType            string
	EncryptedCardNumber string
	ExpiryDate          time.Time
	IsDefault           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

func fromDomain(aggregate *paymentmethod.PaymentMethod) PaymentMethodDTO {
	return PaymentMethodDTO{
		ID:                  aggregate.ID().Int64(),
		UserID:              aggregate.UserID().Int64(),
		CardHolderName:      aggregate.CardHolderName(),
		LastFourDigits:      aggregate.LastFourDigits(),
		CardType:            aggregate.CardType(),
		EncryptedCardNumber: aggregate.EncryptedCardNumber(),
		ExpiryDate:          aggregate.ExpiryDate(),
		IsDefault:           aggregate.IsDefault(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentMethodDTO) (*paymentmethod.PaymentMethod, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return paymentmethod.RestorePaymentMethod(entity, paymentmethod.State{
		UserID:              kernel.ID(dto.UserID),
		CardHolderName:      dto.CardHolderName,
		LastFourDigits:      dto.LastFourDigits,
		CardType:            dto.CardType,
		EncryptedCardNumber: dto.EncryptedCardNumber,
		ExpiryDate:          dto.ExpiryDate,
		IsDefault:           dto.IsDefault,
	})
}
