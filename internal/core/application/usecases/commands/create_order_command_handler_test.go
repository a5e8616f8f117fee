package commands_test

import (
	"errors"
	"testing"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, eta *time.Time) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		clientClaims, nil, order.Diesel, amount(t, "100"), amount(t, "1.50"), "Calle 80 #12-30", nil, eta,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.OrderUoW])
	factory.On("Create").Return(uow)

	eta := now.Add(4 * time.Hour)
	var stored *order.Order

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*order.Order)
				persistAs(50)(args)
			}).
			Return(nil).Once(),
		uow.notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.UserID() == clientClaims.UserID && n.Title() == "Order placed"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	id, err := handler.Handle(ctx, newCreateOrderCommand(t, &eta))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(50), id)
	require.NotNil(t, stored)
	assert.Equal(t, order.Pending, stored.Status())
	assert.Equal(t, "150.00", stored.TotalAmount().String())
	assert.Regexp(t, `^FT-20260310-[0-9A-F]{8}$`, stored.Number())
	require.NotNil(t, stored.EstimatedDeliveryTime())
	assert.True(t, eta.Equal(*stored.EstimatedDeliveryTime()))
	uow.AssertExpectations(t)
	uow.AssertRepositories(t)
}

func TestCreateOrderCommandHandler_Handle_PastEstimatedDeliveryTime(t *testing.T) {
	factory := new(MockUoWFactory[commands.OrderUoW])
	eta := now.Add(-time.Hour)

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err := handler.Handle(t.Context(), newCreateOrderCommand(t, &eta))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ProviderIsForbidden(t *testing.T) {
	factory := new(MockUoWFactory[commands.OrderUoW])
	cmd, err := commands.NewCreateOrderCommand(
		providerClaims, nil, order.Gasoline, amount(t, "10"), amount(t, "2"), "Main St 1", nil, nil,
	)
	require.NoError(t, err)

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ClientOrderingForAnotherUser(t *testing.T) {
	factory := new(MockUoWFactory[commands.OrderUoW])
	cmd, err := commands.NewCreateOrderCommand(
		clientClaims, idPtr(99), order.Gasoline, amount(t, "10"), amount(t, "2"), "Main St 1", nil, nil,
	)
	require.NoError(t, err)

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory[commands.OrderUoW])

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.OrderUoW])
	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err := handler.Handle(ctx, newCreateOrderCommand(t, nil))

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
