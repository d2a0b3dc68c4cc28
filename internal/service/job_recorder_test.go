//go:build !integration

package service_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/mocks"
	"github.com/guttosm/translate-service/internal/service"
)

func TestDefaultJobRecorderConfig(t *testing.T) {
	cfg := service.DefaultJobRecorderConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, 100, cfg.MaxBatchSize)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestAsyncJobRecorder_WritesAndDrains(t *testing.T) {
	repo := new(mocks.MockJobsRepositoryInterface)
	var mu sync.Mutex
	var stored int
	repo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		stored += len(args.Get(1).([]*model.JobRecord))
		mu.Unlock()
	}).Return(nil)

	recorder := service.NewAsyncJobRecorder(repo, service.JobRecorderConfig{BufferSize: 10, NumWorkers: 2})
	for i := 0; i < 5; i++ {
		assert.True(t, recorder.Record(&model.JobRecord{Kind: model.JobText}))
	}
	recorder.Stop()

	enqueued, dropped, written, errs := recorder.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, int64(0), errs)
	assert.Equal(t, 5, stored)
}

func TestAsyncJobRecorder_BatchesQueuedRecords(t *testing.T) {
	release := make(chan struct{})
	began := make(chan struct{}, 1)
	repo := new(mocks.MockJobsRepositoryInterface)
	batchOf := func(n int) interface{} {
		return mock.MatchedBy(func(records []*model.JobRecord) bool { return len(records) == n })
	}
	repo.On("CreateMany", mock.Anything, batchOf(1)).Run(func(mock.Arguments) {
		began <- struct{}{}
		<-release
	}).Return(nil).Once()
	repo.On("CreateMany", mock.Anything, batchOf(3)).Return(nil).Once()

	recorder := service.NewAsyncJobRecorder(repo, service.JobRecorderConfig{BufferSize: 4, NumWorkers: 1})
	recorder.Record(&model.JobRecord{ID: "1"})
	<-began
	recorder.Record(&model.JobRecord{ID: "2"})
	recorder.Record(&model.JobRecord{ID: "3"})
	recorder.Record(&model.JobRecord{ID: "4"})
	close(release)
	recorder.Stop()

	_, _, written, _ := recorder.Stats()
	assert.Equal(t, int64(4), written)
	repo.AssertNumberOfCalls(t, "CreateMany", 2)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAsyncJobRecorder_MaxBatchSize(t *testing.T) {
	release := make(chan struct{})
	began := make(chan struct{}, 1)
	repo := new(mocks.MockJobsRepositoryInterface)
	var mu sync.Mutex
	var sizes []int
	repo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		sizes = append(sizes, len(args.Get(1).([]*model.JobRecord)))
		mu.Unlock()
		select {
		case began <- struct{}{}:
			<-release
		default:
		}
	}).Return(nil)

	recorder := service.NewAsyncJobRecorder(repo, service.JobRecorderConfig{BufferSize: 8, NumWorkers: 1, MaxBatchSize: 2})
	recorder.Record(&model.JobRecord{ID: "0"})
	<-began
	for i := 1; i <= 5; i++ {
		recorder.Record(&model.JobRecord{ID: strconv.Itoa(i)})
	}
	close(release)
	recorder.Stop()

	assert.Equal(t, []int{1, 2, 2, 1}, sizes)
}

func TestAsyncJobRecorder_StoreErrorsAreCounted(t *testing.T) {
	repo := new(mocks.MockJobsRepositoryInterface)
	repo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("write failed"))

	recorder := service.NewAsyncJobRecorder(repo, service.JobRecorderConfig{BufferSize: 4, NumWorkers: 1})
	recorder.Record(&model.JobRecord{ID: "x"})
	recorder.Stop()

	_, _, written, errs := recorder.Stats()
	assert.Equal(t, int64(0), written)
	assert.Equal(t, int64(1), errs)
}

func TestAsyncJobRecorder_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	began := make(chan struct{}, 1)
	repo := new(mocks.MockJobsRepositoryInterface)
	repo.On("CreateMany", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		select {
		case began <- struct{}{}:
		default:
		}
		<-release
	}).Return(nil)

	recorder := service.NewAsyncJobRecorder(repo, service.JobRecorderConfig{BufferSize: 1, NumWorkers: 1})
	assert.True(t, recorder.Record(&model.JobRecord{ID: "1"}))
	<-began
	assert.True(t, recorder.Record(&model.JobRecord{ID: "2"}))
	assert.False(t, recorder.Record(&model.JobRecord{ID: "3"}))

	close(release)
	recorder.Stop()

	_, dropped, written, _ := recorder.Stats()
	assert.Equal(t, int64(1), dropped)
	assert.Equal(t, int64(2), written)
}

func TestAsyncJobRecorder_RecordAfterStop(t *testing.T) {
	repo := new(mocks.MockJobsRepositoryInterface)
	recorder := service.NewAsyncJobRecorder(repo, service.DefaultJobRecorderConfig())
	recorder.Stop()
	recorder.Stop()

	assert.False(t, recorder.Record(&model.JobRecord{}))
	repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}
