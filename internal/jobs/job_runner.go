package jobs

import (
	"rentalmanager-backend/internal/config"
	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/repository/postgres"
	"rentalmanager-backend/internal/service"
	"rentalmanager-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store   *postgres.Store
	booking service.BookingService
	images  storage.ImageStorage
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, booking service.BookingService, images storage.ImageStorage, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:   store,
		booking: booking,
		images:  images,
		config:  cfg,
	}
}

// Config exposes the configuration for the scheduler's job registration.
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

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.CompleteElapsedRentals()
	jr.PurgeResolvedImages()
}
