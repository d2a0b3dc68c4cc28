//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/domain/model"
)

type fakeJobsRepo struct {
	err     error
	created []*model.JobRecord
	calls   int
}

func (f *fakeJobsRepo) Create(_ context.Context, record *model.JobRecord) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeJobsRepo) CreateMany(_ context.Context, records []*model.JobRecord) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, records...)
	return nil
}

func (f *fakeJobsRepo) Query(_ context.Context, _ model.JobQueryOptions) ([]*model.JobRecord, error) {
	f.calls++
	return f.created, f.err
}

func (f *fakeJobsRepo) Count(_ context.Context, _ model.JobQueryOptions) (int64, error) {
	f.calls++
	return int64(len(f.created)), f.err
}

func newTestBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "jobs-test",
	})
}

func TestJobsRepositoryWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	fake := &fakeJobsRepo{}
	repo := NewJobsRepositoryWithCircuitBreaker(fake, newTestBreaker())

	require.NoError(t, repo.Create(ctx, &model.JobRecord{Kind: model.JobText}))
	require.NoError(t, repo.CreateMany(ctx, []*model.JobRecord{{Kind: model.JobImage}, {Kind: model.JobDocument}}))

	records, err := repo.Query(ctx, model.JobQueryOptions{})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	count, err := repo.Count(ctx, model.JobQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, circuitbreaker.StateClosed, repo.GetCircuitBreaker().State())
}

func TestJobsRepositoryWithCircuitBreaker_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	fake := &fakeJobsRepo{err: dbErr}
	repo := NewJobsRepositoryWithCircuitBreaker(fake, newTestBreaker())

	assert.ErrorIs(t, repo.Create(ctx, &model.JobRecord{}), dbErr)
	assert.ErrorIs(t, repo.Create(ctx, &model.JobRecord{}), dbErr)
	require.True(t, repo.GetCircuitBreaker().IsOpen())

	t.Run("writes are dropped silently", func(t *testing.T) {
		before := fake.calls
		assert.NoError(t, repo.Create(ctx, &model.JobRecord{}))
		assert.NoError(t, repo.CreateMany(ctx, []*model.JobRecord{{}}))
		assert.Equal(t, before, fake.calls)
	})

	t.Run("reads report the open circuit", func(t *testing.T) {
		_, err := repo.Query(ctx, model.JobQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		_, err = repo.Count(ctx, model.JobQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}

func TestPrepare(t *testing.T) {
	record := &model.JobRecord{}
	prepare(record)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	kept := &model.JobRecord{ID: "job-1", CreatedAt: fixed}
	prepare(kept)
	assert.Equal(t, "job-1", kept.ID)
	assert.Equal(t, fixed, kept.CreatedAt)
}

func TestJobFilter(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := jobFilter(model.JobQueryOptions{
		Kind:      model.JobDocument,
		Status:    model.JobStatusFailed,
		RequestID: "req-1",
		Since:     &since,
		Limit:     10,
	})

	assert.Equal(t, model.JobDocument, filter["kind"])
	assert.Equal(t, model.JobStatusFailed, filter["status"])
	assert.Equal(t, "req-1", filter["request_id"])
	assert.NotNil(t, filter["created_at"])
	assert.NotContains(t, filter, "limit")
	assert.Empty(t, jobFilter(model.JobQueryOptions{}))
}
