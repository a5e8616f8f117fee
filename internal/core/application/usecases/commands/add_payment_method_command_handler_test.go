package commands_test

import (
	"errors"
	"testing"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddPaymentMethodCommand(t *testing.T, isDefault bool) commands.AddPaymentMethodCommand {
	t.Helper()
	cmd, err := commands.NewAddPaymentMethodCommand(
		clientClaims, "JUAN PEREZ", "4111 1111 1111 1111", "Visa", 2028, time.May, isDefault,
	)
	require.NoError(t, err)
	return cmd
}

func TestAddPaymentMethodCommandHandler_Handle_FirstCardBecomesDefault(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)
	cipher := new(MockCardCipher)

	var stored *paymentmethod.PaymentMethod
	mock.InOrder(
		cipher.On("Encrypt", "4111111111111111").Return("sealed-card", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.paymentMethods.On("ListByUser", ctx, clientClaims.UserID).
			Return([]*paymentmethod.PaymentMethod{}, nil).Once(),
		uow.paymentMethods.On("Add", ctx, mock.AnythingOfType("*paymentmethod.PaymentMethod")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*paymentmethod.PaymentMethod)
				persistAs(31)(args)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddPaymentMethodCommandHandler(factory, cipher, fixedClock)
	id, err := handler.Handle(ctx, newAddPaymentMethodCommand(t, false))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(31), id)
	require.NotNil(t, stored)
	assert.True(t, stored.IsDefault())
	assert.Equal(t, "1111", stored.LastFourDigits())
	assert.Equal(t, "sealed-card", stored.EncryptedCardNumber())
	assert.Equal(t, paymentmethod.ExpiryEndOfMonth(2028, time.May), stored.ExpiryDate())
	uow.AssertExpectations(t)
	cipher.AssertExpectations(t)
}

func TestAddPaymentMethodCommandHandler_Handle_NewDefaultClearsPrevious(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)
	cipher := new(MockCardCipher)
	cipher.On("Encrypt", mock.Anything).Return("sealed-card", nil).Once()

	previous := restorePaymentMethod(t, 30, clientClaims.UserID, true)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.paymentMethods.On("ListByUser", ctx, clientClaims.UserID).
		Return([]*paymentmethod.PaymentMethod{previous}, nil).Once()
	uow.paymentMethods.On("Update", ctx, previous).Return(nil).Once()
	uow.paymentMethods.On("Add", ctx, mock.Anything).Run(persistAs(31)).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAddPaymentMethodCommandHandler(factory, cipher, fixedClock)
	_, err := handler.Handle(ctx, newAddPaymentMethodCommand(t, true))

	require.NoError(t, err)
	assert.False(t, previous.IsDefault())
	uow.AssertRepositories(t)
}

func TestAddPaymentMethodCommandHandler_Handle_SecondCardKeepsDefault(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)
	cipher := new(MockCardCipher)
	cipher.On("Encrypt", mock.Anything).Return("sealed-card", nil).Once()

	previous := restorePaymentMethod(t, 30, clientClaims.UserID, true)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.paymentMethods.On("ListByUser", ctx, clientClaims.UserID).
		Return([]*paymentmethod.PaymentMethod{previous}, nil).Once()
	uow.paymentMethods.On("Add", ctx, mock.MatchedBy(func(pm *paymentmethod.PaymentMethod) bool {
		return !pm.IsDefault()
	})).Run(persistAs(31)).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAddPaymentMethodCommandHandler(factory, cipher, fixedClock)
	_, err := handler.Handle(ctx, newAddPaymentMethodCommand(t, false))

	require.NoError(t, err)
	assert.True(t, previous.IsDefault())
	uow.paymentMethods.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddPaymentMethodCommandHandler_Handle_EncryptError(t *testing.T) {
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	cipher := new(MockCardCipher)
	cipher.On("Encrypt", mock.Anything).Return("", errors.New("cipher down")).Once()

	handler := commands.NewAddPaymentMethodCommandHandler(factory, cipher, fixedClock)
	_, err := handler.Handle(t.Context(), newAddPaymentMethodCommand(t, false))

	require.EqualError(t, err, "cipher down")
	factory.AssertNotCalled(t, "Create")
}

func TestNewAddPaymentMethodCommand_Rejections(t *testing.T) {
	tests := map[string]struct {
		number string
		month  time.Month
		want   error
	}{
		"luhn mismatch": {
			number: "4111 1111 1111 1112",
			month:  time.May,
			want:   errs.ErrValueIsInvalid,
		},
		"month thirteen": {
			number: "4111 1111 1111 1111",
			month:  13,
			want:   errs.ErrValueIsOutOfRange,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewAddPaymentMethodCommand(clientClaims, "JUAN PEREZ", tt.number, "Visa", 2028, tt.month, false)

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeletePaymentMethodCommandHandler_Handle_PromotesNextDefault(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)

	deleted := restorePaymentMethod(t, 30, clientClaims.UserID, true)
	next := restorePaymentMethod(t, 31, clientClaims.UserID, false)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.paymentMethods.On("Get", ctx, deleted.ID()).Return(deleted, nil).Once(),
		uow.paymentMethods.On("Delete", ctx, deleted.ID()).Return(nil).Once(),
		uow.paymentMethods.On("ListByUser", ctx, clientClaims.UserID).
			Return([]*paymentmethod.PaymentMethod{next}, nil).Once(),
		uow.paymentMethods.On("Update", ctx, next).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewDeletePaymentMethodCommand(clientClaims, deleted.ID())
	require.NoError(t, err)

	err = commands.NewDeletePaymentMethodCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, next.IsDefault())
	uow.AssertExpectations(t)
	uow.AssertRepositories(t)
}

func TestDeletePaymentMethodCommandHandler_Handle_ReferencedByPayments(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)

	pm := restorePaymentMethod(t, 30, clientClaims.UserID, false)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.paymentMethods.On("Get", ctx, pm.ID()).Return(pm, nil).Once()
	uow.paymentMethods.On("Delete", ctx, pm.ID()).
		Return(errs.NewDependencyExistsError("payment method", pm.ID(), "payments")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDeletePaymentMethodCommand(adminClaims, pm.ID())
	require.NoError(t, err)

	err = commands.NewDeletePaymentMethodCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDependencyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeletePaymentMethodCommandHandler_Handle_AnotherUsersCard(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentMethodUoW])
	factory.On("Create").Return(uow)

	pm := restorePaymentMethod(t, 30, 99, false)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.paymentMethods.On("Get", ctx, pm.ID()).Return(pm, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDeletePaymentMethodCommand(providerClaims, pm.ID())
	require.NoError(t, err)

	err = commands.NewDeletePaymentMethodCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.paymentMethods.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
