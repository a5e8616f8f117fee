package commands

import (
	"errors"
	"strings"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand exchanges credentials for an access token and a refresh token.
type LoginCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password string) (LoginCommand, error) {
	var required []error
	if strings.TrimSpace(email) == "" {
		required = append(required, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		required = append(required, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(required...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string {
	return c.email
}

func (c LoginCommand) Password() string {
	return c.password
}
