package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/core/ports"
)

// AddPaymentMethodCommandHandler encrypts and stores a card. A user has at most one
// default card: the first card always becomes the default, and a new default card
// takes the mark from the previous one.
type AddPaymentMethodCommandHandler struct {
	uowFactory PaymentMethodUoWFactory
	cipher     ports.CardCipher
	clock      ports.Clock
}

func NewAddPaymentMethodCommandHandler(
	uowFactory PaymentMethodUoWFactory,
	cipher ports.CardCipher,
	clock ports.Clock,
) AddPaymentMethodCommandHandler {
	return AddPaymentMethodCommandHandler{
		uowFactory: uowFactory,
		cipher:     cipher,
		clock:      clock,
	}
}

func (h AddPaymentMethodCommandHandler) Handle(ctx context.Context, cmd AddPaymentMethodCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	encrypted, err := h.cipher.Encrypt(cmd.CardNumber().Digits())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentMethodRepository()
	owned, err := repo.ListByUser(ctx, cmd.Actor().UserID)
	if err != nil {
		return 0, err
	}

	pm, err := paymentmethod.NewPaymentMethod(
		cmd.Actor().UserID,
		cmd.CardHolderName(),
		cmd.CardNumber().LastFour(),
		cmd.CardType(),
		encrypted,
		cmd.ExpiryDate(),
		cmd.IsDefault() || len(owned) == 0,
		h.clock.Now(),
	)
	if err != nil {
		return 0, err
	}

	if pm.IsDefault() {
		for _, other := range owned {
			if !other.IsDefault() {
				continue
			}
			other.ClearDefault()
			if err = repo.Update(ctx, other); err != nil {
				return 0, err
			}
		}
	}

	if err = repo.Add(ctx, pm); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return pm.ID(), nil
}
