// Package http exposes the application over a JSON REST API under /api/v1.
package http

import (
	"context"
	"net/http"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandlers groups the write use cases served over HTTP.
type CommandHandlers struct {
	RegisterUser          commands.RegisterUserCommandHandler
	Login                 commands.LoginCommandHandler
	RefreshToken          commands.RefreshTokenCommandHandler
	Logout                commands.LogoutCommandHandler
	DeleteUser            commands.DeleteUserCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	AssignOrder           commands.AssignOrderCommandHandler
	DispatchOrder         commands.DispatchOrderCommandHandler
	DeliverOrder          commands.DeliverOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	CreatePayment         commands.CreatePaymentCommandHandler
	CompletePayment       commands.CompletePaymentCommandHandler
	FailPayment           commands.FailPaymentCommandHandler
	RefundPayment         commands.RefundPaymentCommandHandler
	AddPaymentMethod      commands.AddPaymentMethodCommandHandler
	DeletePaymentMethod   commands.DeletePaymentMethodCommandHandler
	CreateVehicle         commands.CreateVehicleCommandHandler
	ChangeVehicleStatus   commands.ChangeVehicleStatusCommandHandler
	UpdateVehicleLocation commands.UpdateVehicleLocationCommandHandler
	DeleteVehicle         commands.DeleteVehicleCommandHandler
	CreateOperator        commands.CreateOperatorCommandHandler
	ChangeOperatorStatus  commands.ChangeOperatorStatusCommandHandler
	RenewOperatorLicense  commands.RenewOperatorLicenseCommandHandler
	DeleteOperator        commands.DeleteOperatorCommandHandler
	MarkNotificationRead  commands.MarkNotificationReadCommandHandler
}

// QueryHandlers groups the read use cases served over HTTP.
type QueryHandlers struct {
	GetUser            queries.GetUserQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListOrderPayments  queries.ListOrderPaymentsQueryHandler
	ListPaymentMethods queries.ListPaymentMethodsQueryHandler
	ListVehicles       queries.ListVehiclesQueryHandler
	ListOperators      queries.ListOperatorsQueryHandler
	ListNotifications  queries.ListNotificationsQueryHandler
}

// Server binds HTTP requests to the application's commands and queries.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	issuer   ports.TokenIssuer
	spec     *openapi3.T
	ping     func(ctx context.Context) error
}

// NewServer creates the server. ping backs the health endpoint and may be nil.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	issuer ports.TokenIssuer,
	spec *openapi3.T,
	ping func(ctx context.Context) error,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		issuer:   issuer,
		spec:     spec,
		ping:     ping,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/openapi.json", s.OpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.json")))

	api := e.Group("/api/v1")
	authenticated := Authenticate(s.issuer)
	admin := RequireRoles(user.Admin)
	staff := RequireRoles(user.Admin, user.Provider)

	auth := api.Group("/auth")
	auth.POST("/register", s.RegisterUser, OptionalAuthenticate(s.issuer))
	auth.POST("/login", s.Login)
	auth.POST("/refresh", s.Refresh)
	auth.POST("/logout", s.Logout, authenticated)

	users := api.Group("/users", authenticated)
	users.GET("/:id", s.GetUser)
	users.DELETE("/:id", s.DeleteUser, admin)

	orders := api.Group("/orders", authenticated)
	orders.GET("", s.ListOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.DELETE("/:id", s.DeleteOrder, admin)
	orders.POST("/:id/assign", s.AssignOrder, staff)
	orders.POST("/:id/dispatch", s.DispatchOrder, staff)
	orders.POST("/:id/deliver", s.DeliverOrder, staff)
	orders.POST("/:id/cancel", s.CancelOrder)
	orders.GET("/:id/payments", s.ListOrderPayments)
	orders.POST("/:id/payments", s.CreatePayment)

	payments := api.Group("/payments", authenticated)
	payments.POST("/:id/complete", s.CompletePayment, staff)
	payments.POST("/:id/fail", s.FailPayment, staff)
	payments.POST("/:id/refund", s.RefundPayment, admin)

	paymentMethods := api.Group("/payment-methods", authenticated)
	paymentMethods.GET("", s.ListPaymentMethods)
	paymentMethods.POST("", s.AddPaymentMethod)
	paymentMethods.DELETE("/:id", s.DeletePaymentMethod)

	vehicles := api.Group("/vehicles", authenticated, staff)
	vehicles.GET("", s.ListVehicles)
	vehicles.POST("", s.CreateVehicle, admin)
	vehicles.DELETE("/:id", s.DeleteVehicle, admin)
	vehicles.PUT("/:id/status", s.ChangeVehicleStatus, admin)
	vehicles.PUT("/:id/location", s.UpdateVehicleLocation)

	operators := api.Group("/operators", authenticated, staff)
	operators.GET("", s.ListOperators)
	operators.POST("", s.CreateOperator, admin)
	operators.DELETE("/:id", s.DeleteOperator, admin)
	operators.PUT("/:id/status", s.ChangeOperatorStatus, admin)
	operators.PUT("/:id/license", s.RenewOperatorLicense, admin)

	notifications := api.Group("/notifications", authenticated)
	notifications.GET("", s.ListNotifications)
	notifications.POST("/:id/read", s.MarkNotificationRead)
}

// Health reports whether the database answers.
func (s *Server) Health(c echo.Context) error {
	if s.ping != nil {
		if err := s.ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		}
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// OpenAPI serves the API description consumed by the Swagger UI.
func (s *Server) OpenAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, s.spec)
}
