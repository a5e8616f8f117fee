// Package paymentrepo persists payment aggregates with GORM.
package paymentrepo

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// PaymentDTO is the row of the payments table.
type PaymentDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	OrderID         int64
	PaymentMethodID int64
	Amount          decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status          int
	TransactionID   *string
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID().Int64(),
		OrderID:         aggregate.OrderID().Int64(),
		PaymentMethodID: aggregate.PaymentMethodID().Int64(),
		Amount:          aggregate.Amount().Decimal(),
		Status:          int(aggregate.Status()),
		TransactionID:   aggregate.TransactionID(),
		ProcessedAt:     aggregate.ProcessedAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	entity, err := kernel.RestoreEntity(kernel.ID(dto.ID), dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewAmount(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(entity, payment.State{
		OrderID:         kernel.ID(dto.OrderID),
		PaymentMethodID: kernel.ID(dto.PaymentMethodID),
		Amount:          amount,
		Status:          payment.Status(dto.Status),
		TransactionID:   dto.TransactionID,
		ProcessedAt:     dto.ProcessedAt,
	})
}

func toDomainList(dtos []PaymentDTO) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
