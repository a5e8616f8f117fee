package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fueltrack/cmd"
	api "fueltrack/internal/adapters/in/http"
	"fueltrack/internal/adapters/out/postgres"
	"fueltrack/internal/adapters/out/rabbitmq"
	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Fatal("fueltrack stopped", zap.Error(err))
	}
	logger.Info("fueltrack stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = lvl
	return zcfg.Build()
}

func run(ctx context.Context, cfg cmd.Config, logger *zap.Logger) error {
	db, err := postgres.Open(ctx, cfg.DSN(), logger.Named("postgres"))
	if err != nil {
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	var publisher ports.NotificationPublisher
	if cfg.RabbitMQURL != "" {
		rabbit, dialErr := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger.Named("rabbitmq"))
		if dialErr != nil {
			return dialErr
		}
		defer func() { _ = rabbit.Close() }()
		publisher = rabbit
	} else {
		logger.Info("RABBITMQ_URL not set, notifications are stored but not published")
	}

	root, err := cmd.NewCompositionRoot(cfg, db, publisher, logger)
	if err != nil {
		return err
	}

	if err = seed(ctx, root, cfg, logger); err != nil {
		return err
	}

	server, err := root.CreateServer(ctx)
	if err != nil {
		return err
	}
	e := newEcho(server, cfg, logger)

	manager := root.CreateJobManager()
	if err = manager.StartAll(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr()))
		if startErr := e.Start(cfg.HTTPAddr()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		manager.StopAll(shutdownCtx)
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// seed creates the first administrator when SEED_ADMIN_PASSWORD is set.
func seed(ctx context.Context, root *cmd.CompositionRoot, cfg cmd.Config, logger *zap.Logger) error {
	if cfg.SeedAdminPassword == "" {
		return nil
	}

	seedCmd, err := commands.NewSeedCommand(cfg.SeedAdminEmail, cfg.SeedAdminPassword, cfg.SeedDemoData)
	if err != nil {
		return err
	}
	seeded, err := root.CreateSeedCommandHandler().Handle(ctx, seedCmd)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("database seeded", zap.String("admin", cfg.SeedAdminEmail), zap.Bool("demo_data", cfg.SeedDemoData))
	}
	return nil
}

func newEcho(server *api.Server, cfg cmd.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.WARN)
	e.HTTPErrorHandler = api.NewErrorHandler(logger.Named("http"))

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(api.AccessLog(logger.Named("access")))

	server.Register(e)
	return e
}
