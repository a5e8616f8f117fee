package commands

import (
	"context"
	"fmt"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/ports"
)

type demoUser struct {
	firstName string
	lastName  string
	email     string
	password  string
	phone     string
	role      user.Role
}

type demoVehicle struct {
	plate    string
	brand    string
	model    string
	year     int
	capacity string
}

type demoOperator struct {
	firstName  string
	lastName   string
	license    string
	phone      string
	validYears int
}

var (
	demoUsers = []demoUser{
		{"Juan", "Pérez", "cliente@fueltrack.com", "Cliente123!", "+1234567891", user.Client},
		{"María", "García", "proveedor@fueltrack.com", "Proveedor123!", "+1234567892", user.Provider},
	}
	demoVehicles = []demoVehicle{
		{"ABC-123", "Mercedes", "Actros", 2022, "10000"},
		{"DEF-456", "Volvo", "FH", 2021, "15000"},
	}
	demoOperators = []demoOperator{
		{"Carlos", "Rodríguez", "LIC123456", "+1234567893", 2},
		{"Ana", "López", "LIC789012", "+1234567894", 3},
	}
)

// SeedCommandHandler populates an installation that has no administrator yet.
type SeedCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewSeedCommandHandler(uowFactory UoWFactory, hasher ports.PasswordHasher, clock ports.Clock) SeedCommandHandler {
	return SeedCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

// Handle reports whether anything was seeded. It does nothing once an administrator exists.
func (h SeedCommandHandler) Handle(ctx context.Context, cmd SeedCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	admins, err := users.ListIDsByRole(ctx, user.Admin)
	if err != nil {
		return false, err
	}
	if len(admins) > 0 {
		return false, nil
	}

	if err = h.addUser(ctx, users, demoUser{
		"Admin", "System", cmd.AdminEmail(), cmd.AdminPassword(), "+1234567890", user.Admin,
	}); err != nil {
		return false, err
	}

	if cmd.WithDemoData() {
		if err = h.seedDemoData(ctx, uow); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h SeedCommandHandler) seedDemoData(ctx context.Context, uow UoW) error {
	for _, du := range demoUsers {
		if err := h.addUser(ctx, uow.UserRepository(), du); err != nil {
			return err
		}
	}

	for _, dv := range demoVehicles {
		capacity, err := kernel.ParseAmount(dv.capacity)
		if err != nil {
			return err
		}
		v, err := vehicle.NewVehicle(dv.plate, dv.brand, dv.model, dv.year, capacity)
		if err != nil {
			return fmt.Errorf("seed vehicle %s: %w", dv.plate, err)
		}
		if err = uow.VehicleRepository().Add(ctx, v); err != nil {
			return err
		}
	}

	now := h.clock.Now()
	for _, do := range demoOperators {
		phone := do.phone
		op, err := operator.NewOperator(do.firstName, do.lastName, do.license, now.AddDate(do.validYears, 0, 0), &phone)
		if err != nil {
			return fmt.Errorf("seed operator %s: %w", do.license, err)
		}
		if err = uow.OperatorRepository().Add(ctx, op); err != nil {
			return err
		}
	}

	return nil
}

func (h SeedCommandHandler) addUser(ctx context.Context, users ports.UserRepository, du demoUser) error {
	hash, err := h.hasher.Hash(du.password)
	if err != nil {
		return err
	}

	phone := du.phone
	u, err := user.NewUser(du.firstName, du.lastName, du.email, hash, &phone, du.role)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", du.email, err)
	}

	return users.Add(ctx, u)
}
