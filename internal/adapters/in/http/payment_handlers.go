package http

import (
	"context"
	"net/http"
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ListOrderPayments handles GET /api/v1/orders/{id}/payments.
func (s *Server) ListOrderPayments(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrderPaymentsQuery(claims, id)
	if err != nil {
		return err
	}

	payments, err := s.queries.ListOrderPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// CreatePayment handles POST /api/v1/orders/{id}/payments.
func (s *Server) CreatePayment(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	amount, err := kernel.ParseAmount(req.Amount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentCommand(claims, orderID, kernel.ID(req.PaymentMethodID), amount)
	if err != nil {
		return err
	}

	id, err := s.commands.CreatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// CompletePayment handles POST /api/v1/payments/{id}/complete. The body is optional;
// without a transaction id one is generated.
func (s *Server) CompletePayment(c echo.Context) error {
	var req CompletePaymentRequest
	if c.Request().ContentLength != 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	return s.paymentTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewCompletePaymentCommand(claims, id, req.TransactionID)
		if err != nil {
			return err
		}
		return s.commands.CompletePayment.Handle(ctx, cmd)
	})
}

// FailPayment handles POST /api/v1/payments/{id}/fail.
func (s *Server) FailPayment(c echo.Context) error {
	return s.paymentTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewFailPaymentCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.FailPayment.Handle(ctx, cmd)
	})
}

// RefundPayment handles POST /api/v1/payments/{id}/refund.
func (s *Server) RefundPayment(c echo.Context) error {
	return s.paymentTransition(c, func(ctx context.Context, claims ports.AccessClaims, id kernel.ID) error {
		cmd, err := commands.NewRefundPaymentCommand(claims, id)
		if err != nil {
			return err
		}
		return s.commands.RefundPayment.Handle(ctx, cmd)
	})
}

func (s *Server) paymentTransition(
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

// ListPaymentMethods handles GET /api/v1/payment-methods.
func (s *Server) ListPaymentMethods(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListPaymentMethodsQuery(claims)
	if err != nil {
		return err
	}

	methods, err := s.queries.ListPaymentMethods.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, methods)
}

// AddPaymentMethod handles POST /api/v1/payment-methods.
func (s *Server) AddPaymentMethod(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req AddPaymentMethodRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddPaymentMethodCommand(
		claims,
		req.CardHolderName, req.CardNumber, req.CardType,
		req.ExpiryYear,
		time.Month(req.ExpiryMonth),
		req.IsDefault,
	)
	if err != nil {
		return err
	}

	id, err := s.commands.AddPaymentMethod.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// DeletePaymentMethod handles DELETE /api/v1/payment-methods/{id}.
func (s *Server) DeletePaymentMethod(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePaymentMethodCommand(claims, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeletePaymentMethod.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
