package commands

import (
	"errors"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/guard"
)

var ErrChangeOperatorStatusCommandIsNotConstructed = errors.New(
	"ChangeOperatorStatusCommand must be created via NewChangeOperatorStatusCommand constructor",
)

// ChangeOperatorStatusCommand puts an operator on or off duty.
type ChangeOperatorStatusCommand struct {
	actor      ports.AccessClaims
	operatorID kernel.ID
	status     operator.Status

	guard guard.ConstructorGuard
}

func NewChangeOperatorStatusCommand(
	actor ports.AccessClaims,
	operatorID kernel.ID,
	status operator.Status,
) (ChangeOperatorStatusCommand, error) {
	if err := errors.Join(actor.Validate(), operatorID.Validate(), status.Validate()); err != nil {
		return ChangeOperatorStatusCommand{}, err
	}

	return ChangeOperatorStatusCommand{
		actor:      actor,
		operatorID: operatorID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOperatorStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOperatorStatusCommandIsNotConstructed)
}

func (c ChangeOperatorStatusCommand) Actor() ports.AccessClaims {
	return c.actor
}

func (c ChangeOperatorStatusCommand) OperatorID() kernel.ID {
	return c.operatorID
}

func (c ChangeOperatorStatusCommand) Status() operator.Status {
	return c.status
}
