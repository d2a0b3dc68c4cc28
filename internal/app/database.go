// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/repository"
	"github.com/guttosm/translate-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	JobsRepo           repository.JobsRepositoryInterface
	JobsCircuitBreaker *circuitbreaker.CircuitBreaker
	Recorder           *service.AsyncJobRecorder
	History            service.JobHistory
}

// InitializeDatabase connects to MongoDB and builds the job record components.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without job records")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ttlDays := int(cfg.JobsTTL.Hours() / 24)
	if err := db.SetJobsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set job records TTL index")
	}

	jobsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-jobs",
	})

	jobsRepo := repository.NewJobsRepositoryWithCircuitBreaker(repository.NewJobsRepository(db), jobsCB)

	recorderCfg := service.DefaultJobRecorderConfig()
	if cfg.RecorderBufferSize > 0 {
		recorderCfg.BufferSize = cfg.RecorderBufferSize
	}
	if cfg.RecorderWorkers > 0 {
		recorderCfg.NumWorkers = cfg.RecorderWorkers
	}

	return &DatabaseComponents{
		DB:                 db,
		JobsRepo:           jobsRepo,
		JobsCircuitBreaker: jobsCB,
		Recorder:           service.NewAsyncJobRecorder(jobsRepo, recorderCfg),
		History:            service.NewJobHistoryService(jobsRepo),
	}
}

// Close flushes pending job records and disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if d.Recorder != nil {
		d.Recorder.Stop()
	}
	if d.DB != nil {
		return d.DB.Close(ctx)
	}
	return nil
}
