package jobs

import (
	"database/sql"
	"log/slog"

	"skygear-backend/internal/config"
	"skygear-backend/internal/logger"
)

// JobRunner coordinates all scheduled jobs. Jobs only read committed state:
// equipment and drone status is owned by the rental coordinator and never
// touched from here.
type JobRunner struct {
	db     *sql.DB
	config *config.Config
	log    *slog.Logger
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		config: cfg,
		log:    logger.WithComponent("jobs"),
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueRentals()
	jr.ReportDronesInTransit()
}
