package cmd

import (
	"context"
	"fmt"

	"fueltrack/internal/adapters/in/http"
	"fueltrack/internal/adapters/out/auth"
	"fueltrack/internal/adapters/out/cardcipher"
	"fueltrack/internal/adapters/out/postgres"
	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/jobs"
	"fueltrack/internal/pkg/clock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	cipher     ports.CardCipher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewCompositionRoot builds the security adapters from cfg. publisher may be nil.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) (*CompositionRoot, error) {
	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	issuer, err := auth.NewJWTIssuer(auth.JWTConfig{
		Secret:          cfg.JWTSecret,
		Issuer:          cfg.JWTIssuer,
		Audience:        cfg.JWTAudience,
		AccessTokenTTL:  cfg.JWTAccessTokenTTL,
		RefreshTokenTTL: cfg.JWTRefreshTokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	cipher, err := cardcipher.NewAESGCM(cfg.CardEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("card cipher: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger.Named("uow")),
		hasher:     hasher,
		issuer:     issuer,
		cipher:     cipher,
		clock:      clock.System{},
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentMethodUoWFactory() commands.PaymentMethodUoWFactory {
	return FuncPaymentMethodUoWFactory(func() commands.PaymentMethodUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSeedCommandHandler() commands.SeedCommandHandler {
	return commands.NewSeedCommandHandler(c.uow(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateExpirePendingPaymentsCommandHandler() commands.ExpirePendingPaymentsCommandHandler {
	return commands.NewExpirePendingPaymentsCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireOperatorLicensesCommandHandler() commands.ExpireOperatorLicensesCommandHandler {
	return commands.NewExpireOperatorLicensesCommandHandler(c.fleetUoWFactory(), c.clock)
}

// CreateCommandHandlers builds every write use case exposed over HTTP.
func (c *CompositionRoot) CreateCommandHandlers() http.CommandHandlers {
	users := c.userUoWFactory()
	orders := c.orderUoWFactory()
	payments := c.paymentUoWFactory()
	methods := c.paymentMethodUoWFactory()
	fleet := c.fleetUoWFactory()

	return http.CommandHandlers{
		RegisterUser:          commands.NewRegisterUserCommandHandler(users, c.hasher),
		Login:                 commands.NewLoginCommandHandler(users, c.hasher, c.issuer, c.clock),
		RefreshToken:          commands.NewRefreshTokenCommandHandler(users, c.issuer, c.clock),
		Logout:                commands.NewLogoutCommandHandler(users),
		DeleteUser:            commands.NewDeleteUserCommandHandler(users),
		CreateOrder:           commands.NewCreateOrderCommandHandler(orders, c.clock),
		AssignOrder:           commands.NewAssignOrderCommandHandler(orders, c.clock),
		DispatchOrder:         commands.NewDispatchOrderCommandHandler(orders),
		DeliverOrder:          commands.NewDeliverOrderCommandHandler(orders, c.clock),
		CancelOrder:           commands.NewCancelOrderCommandHandler(orders),
		DeleteOrder:           commands.NewDeleteOrderCommandHandler(orders),
		CreatePayment:         commands.NewCreatePaymentCommandHandler(payments, c.clock),
		CompletePayment:       commands.NewCompletePaymentCommandHandler(payments, c.clock),
		FailPayment:           commands.NewFailPaymentCommandHandler(payments, c.clock),
		RefundPayment:         commands.NewRefundPaymentCommandHandler(payments),
		AddPaymentMethod:      commands.NewAddPaymentMethodCommandHandler(methods, c.cipher, c.clock),
		DeletePaymentMethod:   commands.NewDeletePaymentMethodCommandHandler(methods),
		CreateVehicle:         commands.NewCreateVehicleCommandHandler(fleet),
		ChangeVehicleStatus:   commands.NewChangeVehicleStatusCommandHandler(fleet),
		UpdateVehicleLocation: commands.NewUpdateVehicleLocationCommandHandler(fleet),
		DeleteVehicle:         commands.NewDeleteVehicleCommandHandler(fleet),
		CreateOperator:        commands.NewCreateOperatorCommandHandler(fleet),
		ChangeOperatorStatus:  commands.NewChangeOperatorStatusCommandHandler(fleet),
		RenewOperatorLicense:  commands.NewRenewOperatorLicenseCommandHandler(fleet, c.clock),
		DeleteOperator:        commands.NewDeleteOperatorCommandHandler(fleet),
		MarkNotificationRead:  commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory()),
	}
}

// CreateQueryHandlers builds every read use case exposed over HTTP.
func (c *CompositionRoot) CreateQueryHandlers() http.QueryHandlers {
	return http.QueryHandlers{
		GetUser:            queries.NewGetUserQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrderPayments:  queries.NewListOrderPaymentsQueryHandler(c.gormDB),
		ListPaymentMethods: queries.NewListPaymentMethodsQueryHandler(c.gormDB),
		ListVehicles:       queries.NewListVehiclesQueryHandler(c.gormDB),
		ListOperators:      queries.NewListOperatorsQueryHandler(c.gormDB),
		ListNotifications:  queries.NewListNotificationsQueryHandler(c.gormDB),
	}
}

// CreateServer builds the HTTP server. The health endpoint pings the database.
func (c *CompositionRoot) CreateServer(ctx context.Context) (*http.Server, error) {
	spec, err := http.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	return http.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.issuer, spec, c.ping), nil
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateJobManager schedules the payment and license expiry jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	logger := c.logger.Named("jobs")
	return jobs.NewJobManager([]jobs.Schedule{
		{
			Spec: c.cfg.PaymentExpirySchedule,
			Job:  jobs.NewPaymentExpiryJob(c.CreateExpirePendingPaymentsCommandHandler(), c.cfg.PaymentTTL, c.cfg.PaymentExpiryBatch, logger),
		},
		{
			Spec: c.cfg.LicenseExpirySchedule,
			Job:  jobs.NewLicenseExpiryJob(c.CreateExpireOperatorLicensesCommandHandler(), logger),
		},
	}, c.cfg.JobRunTimeout, logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncPaymentMethodUoWFactory func() commands.PaymentMethodUoW

func (f FuncPaymentMethodUoWFactory) Create() commands.PaymentMethodUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
