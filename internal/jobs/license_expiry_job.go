package jobs

import (
	"context"

	"fueltrack/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// LicenseExpirer is satisfied by commands.ExpireOperatorLicensesCommandHandler.
type LicenseExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireOperatorLicensesCommand) (int, error)
}

// LicenseExpiryJob takes Available operators with an expired license off duty.
type LicenseExpiryJob struct {
	handler LicenseExpirer
	logger  *zap.Logger
}

func NewLicenseExpiryJob(handler LicenseExpirer, logger *zap.Logger) *LicenseExpiryJob {
	return &LicenseExpiryJob{
		handler: handler,
		logger:  logger.With(zap.String("component", "license_expiry_job")),
	}
}

func (j *LicenseExpiryJob) Name() string {
	return "license_expiry"
}

func (j *LicenseExpiryJob) Run(ctx context.Context) (int, error) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireOperatorLicensesCommand())
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		j.logger.Warn("operators taken off duty with expired licenses", zap.Int("count", expired))
	}
	return expired, nil
}
