package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/user"
)

type CreateOperatorCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewCreateOperatorCommandHandler(uowFactory FleetUoWFactory) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identifier of the new operator. A taken license number surfaces
// as errs.ErrConflict.
func (h CreateOperatorCommandHandler) Handle(ctx context.Context, cmd CreateOperatorCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
		return 0, err
	}

	op, err := operator.NewOperator(
		cmd.FirstName(),
		cmd.LastName(),
		cmd.LicenseNumber(),
		cmd.LicenseExpiryDate(),
		cmd.Phone(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OperatorRepository().Add(ctx, op); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return op.ID(), nil
}
