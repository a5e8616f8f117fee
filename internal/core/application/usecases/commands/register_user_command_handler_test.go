package commands_test

import (
	"errors"
	"testing"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_SelfRegistration(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "Secret123!").Return("$2a$10$hashed", nil).Once()

	var stored *user.User
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.users.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*user.User)
				persistAs(5)(args)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewRegisterUserCommand(nil, "Juan", "Pérez", "Juan@Example.com", "Secret123!", nil, user.UnknownRole)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), id)
	require.NotNil(t, stored)
	assert.Equal(t, user.Client, stored.Role())
	assert.Equal(t, "juan@example.com", stored.Email())
	assert.Equal(t, "$2a$10$hashed", stored.PasswordHash())
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_AnonymousProviderIsForbidden(t *testing.T) {
	factory := new(MockUoWFactory[commands.UserUoW])
	hasher := new(MockPasswordHasher)

	cmd, err := commands.NewRegisterUserCommand(nil, "María", "García", "maria@example.com", "Secret123!", nil, user.Provider)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_ClientCannotRegisterAdmin(t *testing.T) {
	factory := new(MockUoWFactory[commands.UserUoW])
	hasher := new(MockPasswordHasher)
	actor := clientClaims

	cmd, err := commands.NewRegisterUserCommand(&actor, "Eve", "Doe", "eve@example.com", "Secret123!", nil, user.Admin)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_AdminRegistersProvider(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil).Once()
	actor := adminClaims

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.Role() == user.Provider
	})).Run(persistAs(6)).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRegisterUserCommand(&actor, "María", "García", "maria@example.com", "Secret123!", nil, user.Provider)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(6), id)
	uow.AssertExpectations(t)
	uow.AssertRepositories(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("Add", ctx, mock.Anything).
		Return(errs.NewConflictError("user", "email", "juan@example.com")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRegisterUserCommand(nil, "Juan", "Pérez", "juan@example.com", "Secret123!", nil, user.Client)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	cmd, err := commands.NewRegisterUserCommand(nil, "Juan", "Pérez", "juan@example.com", "Secret123!", nil, user.Client)
	require.NoError(t, err)

	handler := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory[commands.UserUoW])

	handler := commands.NewRegisterUserCommandHandler(factory, new(MockPasswordHasher))
	_, err := handler.Handle(t.Context(), commands.RegisterUserCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterUserCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(nil, "Juan", "Pérez", "juan@example.com", "short", nil, user.Client)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
