package commands_test

import (
	"testing"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenCommandHandler_Handle_RotatesToken(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	issuer := new(MockTokenIssuer)

	u := restoreUser(t, 2, user.Provider)
	require.NoError(t, u.IssueRefreshToken("old-token", now.Add(time.Hour)))

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.users.On("FindByRefreshToken", ctx, "old-token").Return(u, nil).Once(),
		issuer.On("IssueAccessToken", mock.Anything, now).
			Return(ports.IssuedToken{Value: "access", ExpiresAt: now.Add(time.Hour)}, nil).Once(),
		issuer.On("NewRefreshToken", now).
			Return(ports.IssuedToken{Value: "new-token", ExpiresAt: now.Add(48 * time.Hour)}, nil).Once(),
		uow.users.On("Update", ctx, u).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewRefreshTokenCommand("old-token")
	require.NoError(t, err)

	handler := commands.NewRefreshTokenCommandHandler(factory, issuer, fixedClock)
	tokens, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "new-token", tokens.RefreshToken)
	assert.Equal(t, user.Provider, tokens.Role)
	require.ErrorIs(t, u.CheckRefreshToken("old-token", now), errs.ErrRefreshTokenRejected)
	require.NoError(t, u.CheckRefreshToken("new-token", now))
	uow.AssertExpectations(t)
}

func TestRefreshTokenCommandHandler_Handle_UnknownToken(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	issuer := new(MockTokenIssuer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("FindByRefreshToken", ctx, "stolen").
		Return(nil, errs.NewObjectNotFoundError("refresh token", "<redacted>")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRefreshTokenCommand("stolen")
	require.NoError(t, err)

	handler := commands.NewRefreshTokenCommandHandler(factory, issuer, fixedClock)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrRefreshTokenRejected)
	issuer.AssertNotCalled(t, "NewRefreshToken", mock.Anything)
}

func TestRefreshTokenCommandHandler_Handle_ExpiredToken(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)
	issuer := new(MockTokenIssuer)

	u := restoreUser(t, 2, user.Client)
	require.NoError(t, u.IssueRefreshToken("old-token", now.Add(-time.Second)))

	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("FindByRefreshToken", ctx, "old-token").Return(u, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRefreshTokenCommand("old-token")
	require.NoError(t, err)

	handler := commands.NewRefreshTokenCommandHandler(factory, issuer, fixedClock)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrRefreshTokenRejected)
	uow.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewRefreshTokenCommand_Blank(t *testing.T) {
	_, err := commands.NewRefreshTokenCommand("   ")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestLogoutCommandHandler_Handle_RevokesRefreshToken(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	factory := new(MockUoWFactory[commands.UserUoW])
	factory.On("Create").Return(uow)

	u := restoreUser(t, 2, user.Client)
	require.NoError(t, u.IssueRefreshToken("token", now.Add(time.Hour)))

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.users.On("Get", ctx, u.ID()).Return(u, nil).Once(),
		uow.users.On("Update", ctx, u).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewLogoutCommand(clientClaims)
	require.NoError(t, err)

	err = commands.NewLogoutCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, u.RefreshToken())
	uow.AssertExpectations(t)
}
