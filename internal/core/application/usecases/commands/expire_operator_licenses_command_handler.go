package commands

import (
	"context"

	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/services"
	"fueltrack/internal/core/ports"
)

// ExpireOperatorLicensesCommandHandler moves operators whose license expired to
// OffDuty and sends every administrator a notice per operator. Operators OnDelivery
// finish their order first and are picked up on a later run.
type ExpireOperatorLicensesCommandHandler struct {
	uowFactory FleetUoWFactory
	notifier   services.Notifier
	clock      ports.Clock
}

func NewExpireOperatorLicensesCommandHandler(
	uowFactory FleetUoWFactory,
	clock ports.Clock,
) ExpireOperatorLicensesCommandHandler {
	return ExpireOperatorLicensesCommandHandler{
		uowFactory: uowFactory,
		notifier:   services.NewNotifier(),
		clock:      clock,
	}
}

// Handle returns how many operators were taken off duty.
func (h ExpireOperatorLicensesCommandHandler) Handle(ctx context.Context, cmd ExpireOperatorLicensesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	operatorRepo := uow.OperatorRepository()
	expired, err := operatorRepo.ListAvailableWithExpiredLicense(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	admins, err := uow.UserRepository().ListIDsByRole(ctx, user.Admin)
	if err != nil {
		return 0, err
	}

	notifications := uow.NotificationRepository()
	for _, op := range expired {
		if err = op.ChangeStatus(operator.OffDuty); err != nil {
			return 0, err
		}

		if err = operatorRepo.Update(ctx, op); err != nil {
			return 0, err
		}

		for _, adminID := range admins {
			n, err := h.notifier.OperatorLicenseExpired(adminID, op)
			if err = store(ctx, notifications, n, err); err != nil {
				return 0, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
