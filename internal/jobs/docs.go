// Package jobs provides scheduled background tasks for the stockyard.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field and call
// command handlers, never repositories directly.
//
// # Available Jobs
//
// SessionSweepJob discards driver sessions that were abandoned at a kiosk.
// It only removes sessions from the store; orders already submitted by a
// session stay on the operator task board.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, 30*time.Minute, jobs.DefaultSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
