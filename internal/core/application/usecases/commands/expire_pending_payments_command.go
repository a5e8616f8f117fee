package commands

import (
	"errors"
	"time"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"
)

var ErrExpirePendingPaymentsCommandIsNotConstructed = errors.New(
	"ExpirePendingPaymentsCommand must be created via NewExpirePendingPaymentsCommand constructor",
)

// ExpirePendingPaymentsCommand fails Pending payments that have waited longer than ttl.
// It is issued by the scheduler, not by a user.
type ExpirePendingPaymentsCommand struct {
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpirePendingPaymentsCommand(ttl time.Duration, batchSize int) (ExpirePendingPaymentsCommand, error) {
	if ttl <= 0 {
		return ExpirePendingPaymentsCommand{}, errs.NewValueIsOutOfRangeError("payment ttl", ttl, "1ns", "unbounded")
	}
	if batchSize <= 0 {
		return ExpirePendingPaymentsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return ExpirePendingPaymentsCommand{
		ttl:       ttl,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingPaymentsCommandIsNotConstructed)
}

func (c ExpirePendingPaymentsCommand) TTL() time.Duration {
	return c.ttl
}

func (c ExpirePendingPaymentsCommand) BatchSize() int {
	return c.batchSize
}
