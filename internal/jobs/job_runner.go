package jobs

import (
	"time"

	"equipment-rental-backend/internal/config"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository"
	"equipment-rental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRequestRepository
	emailSvc   service.EmailService
	config     *config.Config
	now        func() time.Time
	timeout    time.Duration
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalRepo repository.RentalRequestRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalRepo: rentalRepo,
		emailSvc:   emailSvc,
		config:     cfg,
		now:        time.Now,
		timeout:    2 * time.Minute,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	start := jr.now()
	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName, "duration", jr.now().Sub(start))
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.ReportOverdueRentals()
}
