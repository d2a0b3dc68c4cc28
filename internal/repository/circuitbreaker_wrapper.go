package repository

import (
	"context"
	"errors"

	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/domain/model"
)

// JobsRepositoryWithCircuitBreaker guards job storage with a circuit breaker.
// Writes are dropped while the circuit is open; job records are not critical.
type JobsRepositoryWithCircuitBreaker struct {
	repo           JobsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewJobsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewJobsRepositoryWithCircuitBreaker(repo JobsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *JobsRepositoryWithCircuitBreaker {
	return &JobsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores one record. An open circuit is not reported as an error.
func (r *JobsRepositoryWithCircuitBreaker) Create(ctx context.Context, record *model.JobRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, record)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of records. An open circuit is not reported as an error.
func (r *JobsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, records []*model.JobRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, records)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query reads records. Unlike writes, an open circuit is returned to the caller.
func (r *JobsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, error) {
	var result []*model.JobRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the number of matching records.
func (r *JobsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.JobQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *JobsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
