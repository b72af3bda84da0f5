package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionSweepJob *SessionSweepJob
}

func NewJobManager(
	sweepHandler SweepIdleSessionsHandler,
	idleTimeout time.Duration,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionSweepJob: NewSessionSweepJob(sweepHandler, idleTimeout, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
}
