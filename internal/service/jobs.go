package service

import (
	"context"
	"fmt"

	"github.com/guttosm/translate-service/internal/domain/model"
)

const (
	defaultJobsLimit = 50
	maxJobsLimit     = 500
)

// JobsReader reads job records.
type JobsReader interface {
	Query(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, error)
	Count(ctx context.Context, opts model.JobQueryOptions) (int64, error)
}

// JobHistory lists recorded jobs for the admin API.
type JobHistory interface {
	List(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, int64, error)
}

// JobHistoryService implements JobHistory on top of a JobsReader.
type JobHistoryService struct {
	repo JobsReader
}

// NewJobHistoryService creates a JobHistoryService.
func NewJobHistoryService(repo JobsReader) *JobHistoryService {
	return &JobHistoryService{repo: repo}
}

// NormalizeJobQuery applies the default page size and caps it.
func NormalizeJobQuery(opts model.JobQueryOptions) model.JobQueryOptions {
	if opts.Limit <= 0 {
		opts.Limit = defaultJobsLimit
	}
	if opts.Limit > maxJobsLimit {
		opts.Limit = maxJobsLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return opts
}

// List returns one page of records, newest first, with the total match count.
func (s *JobHistoryService) List(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, int64, error) {
	opts = NormalizeJobQuery(opts)

	records, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("query jobs: %w", err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}
	if records == nil {
		records = []*model.JobRecord{}
	}
	return records, total, nil
}
