package repository

import (
	"context"

	"github.com/guttosm/translate-service/internal/domain/model"
)

// JobsRepositoryInterface defines the interface for job record storage.
type JobsRepositoryInterface interface {
	Create(ctx context.Context, record *model.JobRecord) error
	CreateMany(ctx context.Context, records []*model.JobRecord) error
	Query(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, error)
	Count(ctx context.Context, opts model.JobQueryOptions) (int64, error)
}

var (
	_ JobsRepositoryInterface = (*JobsRepository)(nil)
	_ JobsRepositoryInterface = (*JobsRepositoryWithCircuitBreaker)(nil)
)
