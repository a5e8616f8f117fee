package http

import (
	"net/http"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	role := user.UnknownRole
	if req.Role != nil {
		parsed, err := user.ParseRole(*req.Role)
		if err != nil {
			return err
		}
		role = parsed
	}

	cmd, err := commands.NewRegisterUserCommand(
		optionalClaimsFrom(c),
		req.FirstName, req.LastName, req.Email, req.Password,
		req.Phone,
		role,
	)
	if err != nil {
		return err
	}

	id, err := s.commands.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}

	tokens, err := s.commands.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(tokens))
}

// Refresh handles POST /api/v1/auth/refresh.
func (s *Server) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(req.RefreshToken)
	if err != nil {
		return err
	}

	tokens, err := s.commands.RefreshToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(tokens))
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewLogoutCommand(claims)
	if err != nil {
		return err
	}

	if err = s.commands.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUser handles GET /api/v1/users/{id}.
func (s *Server) GetUser(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(claims, id)
	if err != nil {
		return err
	}

	profile, err := s.queries.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteUser handles DELETE /api/v1/users/{id}.
func (s *Server) DeleteUser(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(claims, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	unreadOnly, err := queryBool(c, "unreadOnly")
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(claims, unreadOnly, page)
	if err != nil {
		return err
	}

	notifications, err := s.queries.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /api/v1/notifications/{id}/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(claims, id)
	if err != nil {
		return err
	}

	if err = s.commands.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
