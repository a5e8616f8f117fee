package commands_test

import (
	"testing"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompletePaymentCommandHandler_Handle_GeneratesTransactionID(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	o := restoreOrder(t, 10, order.State{Status: order.Confirmed})
	pay := restorePayment(t, 40, o.ID(), "150.00", payment.Pending)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.payments.On("Get", ctx, pay.ID()).Return(pay, nil).Once(),
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.payments.On("GetForUpdate", ctx, pay.ID()).Return(pay, nil).Once(),
		uow.payments.On("ListByOrder", ctx, o.ID()).Return([]*payment.Payment{pay}, nil).Once(),
		uow.payments.On("Update", ctx, pay).Return(nil).Once(),
		uow.notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Type() == notification.PaymentConfirmation && n.UserID() == o.UserID()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCompletePaymentCommand(providerClaims, pay.ID(), "  ")
	require.NoError(t, err)

	handler := commands.NewCompletePaymentCommandHandler(factory, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.Completed, pay.Status())
	require.NotNil(t, pay.TransactionID())
	assert.Regexp(t, `^TXN-[0-9A-F-]{36}$`, *pay.TransactionID())
	require.NotNil(t, pay.ProcessedAt())
	assert.True(t, now.Equal(*pay.ProcessedAt()))
	uow.AssertExpectations(t)
	uow.AssertRepositories(t)
}

func TestCompletePaymentCommandHandler_Handle_WouldExceedTotal(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	o := restoreOrder(t, 10, order.State{Status: order.Confirmed})
	done := restorePayment(t, 40, o.ID(), "100.00", payment.Completed)
	pay := restorePayment(t, 41, o.ID(), "100.00", payment.Pending)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.payments.On("Get", ctx, pay.ID()).Return(pay, nil).Once()
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.payments.On("GetForUpdate", ctx, pay.ID()).Return(pay, nil).Once()
	uow.payments.On("ListByOrder", ctx, o.ID()).Return([]*payment.Payment{done, pay}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewCompletePaymentCommand(adminClaims, pay.ID(), "TXN-EXTERNAL")
	require.NoError(t, err)

	handler := commands.NewCompletePaymentCommandHandler(factory, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, payment.Pending, pay.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompletePaymentCommandHandler_Handle_ClientIsForbidden(t *testing.T) {
	factory := new(MockUoWFactory[commands.PaymentUoW])
	cmd, err := commands.NewCompletePaymentCommand(clientClaims, 40, "")
	require.NoError(t, err)

	handler := commands.NewCompletePaymentCommandHandler(factory, fixedClock)
	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRefundPaymentCommandHandler_Handle_PendingPayment(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	o := restoreOrder(t, 10, order.State{Status: order.Confirmed})
	pay := restorePayment(t, 40, o.ID(), "10.00", payment.Pending)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.payments.On("Get", ctx, pay.ID()).Return(pay, nil).Once()
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.payments.On("GetForUpdate", ctx, pay.ID()).Return(pay, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRefundPaymentCommand(adminClaims, pay.ID())
	require.NoError(t, err)

	err = commands.NewRefundPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
