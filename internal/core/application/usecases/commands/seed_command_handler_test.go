package commands_test

import (
	"testing"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedCommandHandler_Handle_SeedsDemoData(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil).Times(3)

	var (
		users     []*user.User
		vehicles  []*vehicle.Vehicle
		operators []*operator.Operator
	)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("ListIDsByRole", ctx, user.Admin).Return([]kernel.ID{}, nil).Once()
	uow.users.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) { users = append(users, args.Get(1).(*user.User)) }).
		Return(nil).Times(3)
	uow.vehicles.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) { vehicles = append(vehicles, args.Get(1).(*vehicle.Vehicle)) }).
		Return(nil).Twice()
	uow.operators.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) { operators = append(operators, args.Get(1).(*operator.Operator)) }).
		Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewSeedCommand("admin@fueltrack.com", "Admin123!", true)
	require.NoError(t, err)

	seeded, err := commands.NewSeedCommandHandler(factory, hasher, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, seeded)
	require.Len(t, users, 3)
	assert.Equal(t, user.Admin, users[0].Role())
	assert.Equal(t, "admin@fueltrack.com", users[0].Email())
	assert.Equal(t, user.Client, users[1].Role())
	assert.Equal(t, user.Provider, users[2].Role())
	require.Len(t, vehicles, 2)
	assert.Equal(t, "ABC-123", vehicles[0].LicensePlate())
	assert.Equal(t, "15000.00", vehicles[1].Capacity().String())
	require.Len(t, operators, 2)
	assert.True(t, now.AddDate(2, 0, 0).Equal(operators[0].LicenseExpiryDate()))
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestSeedCommandHandler_Handle_AdminOnly(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "Admin123!").Return("$2a$10$hashed", nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("ListIDsByRole", ctx, user.Admin).Return([]kernel.ID{}, nil).Once()
	uow.users.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewSeedCommand("admin@fueltrack.com", "Admin123!", false)
	require.NoError(t, err)

	seeded, err := commands.NewSeedCommandHandler(factory, hasher, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, seeded)
	uow.vehicles.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertRepositories(t)
}

func TestSeedCommandHandler_Handle_SkipsWhenAdminExists(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("ListIDsByRole", ctx, user.Admin).Return([]kernel.ID{1}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewSeedCommand("admin@fueltrack.com", "Admin123!", true)
	require.NoError(t, err)

	seeded, err := commands.NewSeedCommandHandler(factory, hasher, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, seeded)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
