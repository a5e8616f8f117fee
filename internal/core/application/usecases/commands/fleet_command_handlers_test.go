package commands_test

import (
	"testing"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.FleetUoW])
	factory.On("Create").Return(uow)

	location, err := kernel.NewCoordinates(4.6482, -74.0637)
	require.NoError(t, err)

	var stored *vehicle.Vehicle
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.vehicles.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*vehicle.Vehicle)
				persistAs(20)(args)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateVehicleCommand(adminClaims, "GHI-789", "Scania", "R450", 2023, amount(t, "12000"), &location)
	require.NoError(t, err)

	id, err := commands.NewCreateVehicleCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(20), id)
	require.NotNil(t, stored)
	assert.Equal(t, vehicle.Available, stored.Status())
	require.NotNil(t, stored.CurrentLocation())
	uow.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_ProviderIsForbidden(t *testing.T) {
	factory := new(MockUoWFactory[commands.FleetUoW])

	cmd, err := commands.NewCreateVehicleCommand(providerClaims, "GHI-789", "Scania", "R450", 2023, amount(t, "12000"), nil)
	require.NoError(t, err)

	_, err = commands.NewCreateVehicleCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeVehicleStatusCommandHandler_Handle_InUseIsRejected(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.FleetUoW])
	factory.On("Create").Return(uow)

	v := restoreVehicle(t, 20, "10000", vehicle.InUse)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.vehicles.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewChangeVehicleStatusCommand(adminClaims, v.ID(), vehicle.Maintenance)
	require.NoError(t, err)

	err = commands.NewChangeVehicleStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, vehicle.InUse, v.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRenewOperatorLicenseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.FleetUoW])
	factory.On("Create").Return(uow)

	op := restoreOperator(t, 30, now.AddDate(0, 0, -3), operator.OffDuty)
	expiry := now.AddDate(2, 0, 0)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.operators.On("GetForUpdate", ctx, op.ID()).Return(op, nil).Once(),
		uow.operators.On("Update", ctx, op).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewRenewOperatorLicenseCommand(adminClaims, op.ID(), expiry)
	require.NoError(t, err)

	err = commands.NewRenewOperatorLicenseCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, expiry.Equal(op.LicenseExpiryDate()))
	assert.Equal(t, operator.OffDuty, op.Status())
	uow.AssertExpectations(t)
}

func TestRenewOperatorLicenseCommandHandler_Handle_PastExpiry(t *testing.T) {
	factory := new(MockUoWFactory[commands.FleetUoW])

	cmd, err := commands.NewRenewOperatorLicenseCommand(adminClaims, 30, now.Add(-time.Hour))
	require.NoError(t, err)

	err = commands.NewRenewOperatorLicenseCommandHandler(factory, fixedClock).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteVehicleCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.FleetUoW])
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.vehicles.On("Delete", ctx, kernel.ID(20)).Return(errs.NewObjectNotFoundError("vehicle", 20)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDeleteVehicleCommand(adminClaims, 20)
	require.NoError(t, err)

	err = commands.NewDeleteVehicleCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
