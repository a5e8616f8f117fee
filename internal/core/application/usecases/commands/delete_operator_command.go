package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrDeleteOperatorCommandIsNotConstructed = errors.New(
	"DeleteOperatorCommand must be created via NewDeleteOperatorCommand constructor",
)

// DeleteOperatorCommand removes an operator. Orders that referenced it lose the reference.
type DeleteOperatorCommand struct {
	actor      ports.AccessClaims
	operatorID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOperatorCommand(actor ports.AccessClaims, operatorID kernel.ID) (DeleteOperatorCommand, error) {
	if err := errors.Join(actor.Validate(), operatorID.Validate()); err != nil {
		return DeleteOperatorCommand{}, err
	}

	return DeleteOperatorCommand{
		actor:      actor,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOperatorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOperatorCommandIsNotConstructed)
}

func (c DeleteOperatorCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c DeleteOperatorCommand) OperatorID() kernel.ID {
	return c.operatorID
}
