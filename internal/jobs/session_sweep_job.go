package jobs

import (
	"context"
	"log/slog"
	"time"

	"stockyard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep at the start of every minute.
const DefaultSweepSchedule = "0 * * * * *"

// SweepIdleSessionsHandler is the part of commands.SweepIdleSessionsCommandHandler
// the job needs.
type SweepIdleSessionsHandler interface {
	Handle(ctx context.Context, cmd commands.SweepIdleSessionsCommand) (int, error)
}

// SessionSweepJob discards driver sessions that have been idle for longer
// than the configured timeout.
type SessionSweepJob struct {
	handler     SweepIdleSessionsHandler
	idleTimeout time.Duration
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewSessionSweepJob creates the job. schedule is a cron expression with a
// seconds field; an empty schedule means DefaultSweepSchedule.
func NewSessionSweepJob(
	handler SweepIdleSessionsHandler,
	idleTimeout time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &SessionSweepJob{
		handler:     handler,
		idleTimeout: idleTimeout,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "session_sweep_job"),
	}
}

func (j *SessionSweepJob) Start() error {
	cmd, err := commands.NewSweepIdleSessionsCommand(j.idleTimeout)
	if err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started",
		"schedule", j.schedule, "idle_timeout", j.idleTimeout)
	return nil
}

// Run performs one sweep.
func (j *SessionSweepJob) Run(ctx context.Context, cmd commands.SweepIdleSessionsCommand) {
	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep failed", "error", err, "removed", removed)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Idle sessions discarded", "removed", removed)
	}
}

// Stop waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
