package commands

import (
	"errors"
	"strings"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

const minPasswordLength = 8

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account. Anonymous callers always get a Client account;
// only an Admin may register other roles.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(nil, "Juan", "Pérez", "juan@example.com", "Secret123!", nil, user.Client)
//	id, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct {
	actor     *ports.AccessClaims
	firstName string
	lastName  string
	email     string
	password  string
	phone     *string
	role      user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand builds the command. actor is nil for self-registration and
// role defaults to Client when unknown.
func NewRegisterUserCommand(
	actor *ports.AccessClaims,
	firstName, lastName, email, password string,
	phone *string,
	role user.Role,
) (RegisterUserCommand, error) {
	if role == user.UnknownRole {
		role = user.Client
	}

	cmd := RegisterUserCommand{
		actor:     actor,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPassword(password),
		role.Validate(),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Actor() *ports.AccessClaims {
	return c.actor
}

func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Phone() *string {
	return c.phone
}

func (c RegisterUserCommand) Role() user.Role {
	return c.role
}


func (c *RegisterUserCommand) setPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}

	c.password = password
	return nil
}
