package commands

import (
	"errors"
	"time"

	"stockyard/internal/pkg/errs"
	"stockyard/internal/pkg/guard"
)

var ErrSweepIdleSessionsCommandIsNotConstructed = errors.New(
	"SweepIdleSessionsCommand must be created via NewSweepIdleSessionsCommand constructor",
)

// SweepIdleSessionsCommand drops driver sessions nobody touched for longer
// than idleTimeout. Dropped sessions never submit anything.
type SweepIdleSessionsCommand struct { //nolint:recvcheck //using for validation
	idleTimeout time.Duration

	guard guard.ConstructorGuard
}

func NewSweepIdleSessionsCommand(idleTimeout time.Duration) (SweepIdleSessionsCommand, error) {
	if idleTimeout <= 0 {
		return SweepIdleSessionsCommand{}, errs.NewValueIsOutOfRangeError("idle timeout", idleTimeout, time.Nanosecond, "unbounded")
	}

	return SweepIdleSessionsCommand{
		idleTimeout: idleTimeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SweepIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrSweepIdleSessionsCommandIsNotConstructed)
}

func (c SweepIdleSessionsCommand) IdleTimeout() time.Duration {
	return c.idleTimeout
}
