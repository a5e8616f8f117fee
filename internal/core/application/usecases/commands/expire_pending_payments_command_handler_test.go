package commands_test

import (
	"errors"
	"testing"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingPaymentsCommandHandler_Handle_FailsStalePayments(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	o := restoreOrder(t, 10, order.State{Status: order.Pending})
	first := restorePayment(t, 40, o.ID(), "10.00", payment.Pending)
	second := restorePayment(t, 41, o.ID(), "20.00", payment.Pending)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.payments.On("ListPendingCreatedBefore", ctx, now.Add(-30*time.Minute), 100).
		Return([]*payment.Payment{first, second}, nil).Once()
	uow.payments.On("Update", ctx, first).Return(nil).Once()
	uow.payments.On("Update", ctx, second).Return(nil).Once()
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Twice()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewExpirePendingPaymentsCommand(30*time.Minute, 100)
	require.NoError(t, err)

	handler := commands.NewExpirePendingPaymentsCommandHandler(factory, fixedClock)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, payment.Failed, first.Status())
	assert.Equal(t, payment.Failed, second.Status())
	uow.AssertExpectations(t)
	uow.AssertRepositories(t)
}

func TestExpirePendingPaymentsCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.payments.On("ListPendingCreatedBefore", ctx, mock.Anything, 50).
		Return([]*payment.Payment{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewExpirePendingPaymentsCommand(time.Hour, 50)
	require.NoError(t, err)

	expired, err := commands.NewExpirePendingPaymentsCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, expired)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestExpirePendingPaymentsCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.PaymentUoW])
	factory.On("Create").Return(uow)

	pay := restorePayment(t, 40, 10, "10.00", payment.Pending)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.payments.On("ListPendingCreatedBefore", ctx, mock.Anything, mock.Anything).
		Return([]*payment.Payment{pay}, nil).Once()
	uow.payments.On("Update", ctx, pay).Return(errors.New("update error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewExpirePendingPaymentsCommand(time.Hour, 50)
	require.NoError(t, err)

	_, err = commands.NewExpirePendingPaymentsCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewExpirePendingPaymentsCommand_Bounds(t *testing.T) {
	_, err := commands.NewExpirePendingPaymentsCommand(0, 10)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewExpirePendingPaymentsCommand(time.Minute, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
