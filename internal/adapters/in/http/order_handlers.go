package http

import (
	"context"
	"net/http"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders?status=&limit=&offset=.
func (s *Server) ListOrders(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var status *order.Status
	raw, err := queryString(c, "status")
	if err != nil {
		return err
	}
	if raw != nil {
		parsed, parseErr := order.ParseStatus(*raw)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	page, err := queryPage(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(claims, status, page)
	if err != nil {
		return err
	}

	orders, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	fuelType, err := order.ParseFuelType(req.FuelType)
	if err != nil {
		return err
	}
	quantity, err := kernel.ParseAmount(req.Quantity)
	if err != nil {
		return err
	}
	price, err := kernel.ParseAmount(req.PricePerLiter)
	if err != nil {
		return err
	}
	location, err := kernel.NewOptionalCoordinates(req.DeliveryLatitude, req.DeliveryLongitude)
	if err != nil {
		return err
	}

	var ownerID *kernel.ID
	if req.UserID != nil {
		id, idErr := kernel.NewID(*req.UserID)
		if idErr != nil {
			return idErr
		}
		ownerID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		claims,
		ownerID,
		fuelType,
		quantity,
		price,
		req.DeliveryAddress,
		location,
		req.EstimatedDeliveryTime,
	)
	if err != nil {
		return err
	}

	id, err := s.commands.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(claims, id)
	if err != nil {
		return err
	}

	o, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// AssignOrder handles POST /api/v1/orders/{id}/assign.
func (s *Server) AssignOrder(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AssignOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(
		claims,
		id,
		kernel.ID(req.VehicleID),
		kernel.ID(req.OperatorID),
		req.EstimatedDeliveryTime,
	)
	if err != nil {
		return err
	}

	if err = s.commands.AssignOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/{id}/dispatch.
func (s *Server) DispatchOrder(c echo.Context) error {
	return s.orderTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewDispatchOrderCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.DispatchOrder.Handle(ctx, cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/{id}/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	return s.orderTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewDeliverOrderCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.DeliverOrder.Handle(ctx, cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	return s.orderTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewCancelOrderCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.CancelOrder.Handle(ctx, cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(c echo.Context) error {
	return s.orderTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewDeleteOrderCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.DeleteOrder.Handle(ctx, cmd)
	})
}

// orderTransition runs a body-less command against the order in the path.
func (s *Server) orderTransition(
	c echo.Context,
	run func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error,
) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err = run(c.Request().Context(), claims, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
