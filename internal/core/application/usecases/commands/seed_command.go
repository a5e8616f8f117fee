package commands

import (
	"errors"
	"strings"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

var ErrSeedCommandIsNotConstructed = errors.New("SeedCommand must be created via NewSeedCommand constructor")

// SeedCommand creates the first administrator of an empty installation and, when
// asked to, a small demo data set: a client, a provider, two vehicles and two operators.
type SeedCommand struct {
	adminEmail    string
	adminPassword string
	withDemoData  bool

	guard guard.ConstructorGuard
}

func NewSeedCommand(adminEmail, adminPassword string, withDemoData bool) (SeedCommand, error) {
	var required []error
	if strings.TrimSpace(adminEmail) == "" {
		required = append(required, errs.NewValueIsRequiredError("admin email"))
	}
	if adminPassword == "" {
		required = append(required, errs.NewValueIsRequiredError("admin password"))
	}
	if err := errors.Join(required...); err != nil {
		return SeedCommand{}, err
	}

	return SeedCommand{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		withDemoData:  withDemoData,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SeedCommand) Validate() error {
	return c.guard.Validate(ErrSeedCommandIsNotConstructed)
}

func (c SeedCommand) AdminEmail() string {
	return c.adminEmail
}

func (c SeedCommand) AdminPassword() string {
	return c.adminPassword
}

func (c SeedCommand) WithDemoData() bool {
	return c.withDemoData
}
