package http

import (
	"net/http"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// ListVehicles handles GET /api/v1/vehicles?status=.
func (s *Server) ListVehicles(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var status *vehicle.Status
	raw, err := queryString(c, "status")
	if err != nil {
		return err
	}
	if raw != nil {
		parsed, parseErr := vehicle.ParseStatus(*raw)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	query, err := queries.NewListVehiclesQuery(claims, status)
	if err != nil {
		return err
	}

	vehicles, err := s.queries.ListVehicles.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req CreateVehicleRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	capacity, err := kernel.ParseAmount(req.Capacity)
	if err != nil {
		return err
	}
	location, err := kernel.NewOptionalCoordinates(req.CurrentLatitude, req.CurrentLongitude)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateVehicleCommand(
		claims,
		req.LicensePlate, req.Brand, req.Model,
		req.Year,
		capacity,
		location,
	)
	if err != nil {
		return err
	}

	id, err := s.commands.CreateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ChangeVehicleStatus handles PUT /api/v1/vehicles/{id}/status.
func (s *Server) ChangeVehicleStatus(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	status, err := vehicle.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(claims, id, status)
	if err != nil {
		return err
	}

	if err = s.commands.ChangeVehicleStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateVehicleLocation handles PUT /api/v1/vehicles/{id}/location.
func (s *Server) UpdateVehicleLocation(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req LocationRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	location, err := kernel.NewOptionalCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateVehicleLocationCommand(claims, id, location)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateVehicleLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{id}.
func (s *Server) DeleteVehicle(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteVehicleCommand(claims, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteVehicle.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOperators handles GET /api/v1/operators?status=.
func (s *Server) ListOperators(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var status *operator.Status
	raw, err := queryString(c, "status")
	if err != nil {
		return err
	}
	if raw != nil {
		parsed, parseErr := operator.ParseStatus(*raw)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	query, err := queries.NewListOperatorsQuery(claims, status)
	if err != nil {
		return err
	}

	operators, err := s.queries.ListOperators.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, operators)
}

// CreateOperator handles POST /api/v1/operators.
func (s *Server) CreateOperator(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req CreateOperatorRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOperatorCommand(
		claims,
		req.FirstName, req.LastName, req.LicenseNumber,
		req.LicenseExpiryDate,
		req.Phone,
	)
	if err != nil {
		return err
	}

	id, err := s.commands.CreateOperator.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ChangeOperatorStatus handles PUT /api/v1/operators/{id}/status.
func (s *Server) ChangeOperatorStatus(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	status, err := operator.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOperatorStatusCommand(claims, id, status)
	if err != nil {
		return err
	}

	if err = s.commands.ChangeOperatorStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RenewOperatorLicense handles PUT /api/v1/operators/{id}/license.
func (s *Server) RenewOperatorLicense(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RenewLicenseRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRenewOperatorLicenseCommand(claims, id, req.LicenseExpiryDate)
	if err != nil {
		return err
	}

	if err = s.commands.RenewOperatorLicense.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOperator handles DELETE /api/v1/operators/{id}.
func (s *Server) DeleteOperator(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOperatorCommand(claims, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteOperator.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
