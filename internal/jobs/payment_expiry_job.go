package jobs

import (
	"context"
	"time"

	"fueltrack/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// PaymentExpirer is satisfied by commands.ExpirePendingPaymentsCommandHandler.
type PaymentExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingPaymentsCommand) (int, error)
}

// PaymentExpiryJob fails payments that stayed Pending longer than the configured TTL.
// One run keeps processing batches until a batch comes back short.
type PaymentExpiryJob struct {
	handler   PaymentExpirer
	ttl       time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewPaymentExpiryJob(handler PaymentExpirer, ttl time.Duration, batchSize int, logger *zap.Logger) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler:   handler,
		ttl:       ttl,
		batchSize: batchSize,
		logger:    logger.With(zap.String("component", "payment_expiry_job")),
	}
}

func (j *PaymentExpiryJob) Name() string {
	return "payment_expiry"
}

// Run returns the total number of payments marked Failed.
func (j *PaymentExpiryJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpirePendingPaymentsCommand(j.ttl, j.batchSize)
	if err != nil {
		return 0, err
	}

	total := 0
	for {
		if err = ctx.Err(); err != nil {
			return total, err
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			return total, handleErr
		}
		total += expired
		if expired < j.batchSize {
			break
		}
	}

	if total > 0 {
		j.logger.Info("pending payments expired", zap.Int("count", total), zap.Duration("ttl", j.ttl))
	}
	return total, nil
}
