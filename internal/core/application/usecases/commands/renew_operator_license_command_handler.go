package commands

import (
	"context"
	"fmt"

	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"
)

type RenewOperatorLicenseCommandHandler struct {
	uowFactory FleetUoWFactory
	clock      ports.Clock
}

func NewRenewOperatorLicenseCommandHandler(uowFactory FleetUoWFactory, clock ports.Clock) RenewOperatorLicenseCommandHandler {
	return RenewOperatorLicenseCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the new expiry date, which must lie in the future. An operator taken
// off duty for an expired license stays OffDuty until put back on duty.
func (h RenewOperatorLicenseCommandHandler) Handle(ctx context.Context, cmd RenewOperatorLicenseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().Require(user.Admin); err != nil {
		return err
	}

	if !cmd.ExpiryDate().After(h.clock.Now()) {
		return errs.NewValueIsInvalidErrorWithCause("license expiry date",
			fmt.Errorf("%s is not in the future", cmd.ExpiryDate().Format("2006-01-02")))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OperatorRepository()
	op, err := repo.GetForUpdate(ctx, cmd.OperatorID())
	if err != nil {
		return err
	}

	if err = op.RenewLicense(cmd.ExpiryDate()); err != nil {
		return err
	}

	if err = repo.Update(ctx, op); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
