package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/logger"
	"github.com/guttosm/translate-service/internal/metrics"
)

// JobStore persists job records in bulk.
type JobStore interface {
	CreateMany(ctx context.Context, records []*model.JobRecord) error
}

// JobRecorder accepts job records without blocking the caller.
type JobRecorder interface {
	Record(record *model.JobRecord) bool
}

// JobRecorderConfig holds configuration for the async job recorder.
type JobRecorderConfig struct {
	// BufferSize is the number of records that may wait for a worker.
	BufferSize int
	// NumWorkers is the number of goroutines writing records.
	NumWorkers int
	// MaxBatchSize caps the records sent in one bulk insert.
	MaxBatchSize int
	// WriteTimeout bounds a single write.
	WriteTimeout time.Duration
}

// DefaultJobRecorderConfig returns defaults for the job recorder.
func DefaultJobRecorderConfig() JobRecorderConfig {
	return JobRecorderConfig{
		BufferSize:   1000,
		NumWorkers:   2,
		MaxBatchSize: 100,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncJobRecorder writes job records with a fixed pool of workers.
// Each worker batches whatever is already queued into one bulk insert.
// Records are dropped when the buffer is full.
type AsyncJobRecorder struct {
	store        JobStore
	recordCh     chan *model.JobRecord
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration
	maxBatch     int

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncJobRecorder starts the worker pool.
func NewAsyncJobRecorder(store JobStore, cfg JobRecorderConfig) *AsyncJobRecorder {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultJobRecorderConfig().BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultJobRecorderConfig().WriteTimeout
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultJobRecorderConfig().MaxBatchSize
	}

	r := &AsyncJobRecorder{
		store:        store,
		recordCh:     make(chan *model.JobRecord, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
		maxBatch:     cfg.MaxBatchSize,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

func (r *AsyncJobRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.recordCh:
			r.write(r.collect(record))
		case <-r.stopCh:
			// drain what is already queued
			for {
				select {
				case record := <-r.recordCh:
					r.write(r.collect(record))
				default:
					return
				}
			}
		}
	}
}

// collect appends queued records to first without blocking, up to maxBatch.
func (r *AsyncJobRecorder) collect(first *model.JobRecord) []*model.JobRecord {
	batch := []*model.JobRecord{first}
	for len(batch) < r.maxBatch {
		select {
		case record := <-r.recordCh:
			batch = append(batch, record)
		default:
			return batch
		}
	}
	return batch
}

func (r *AsyncJobRecorder) write(batch []*model.JobRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.store.CreateMany(ctx, batch); err != nil {
		atomic.AddInt64(&r.errors, int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("records", len(batch)).Str("first_job_id", batch[0].ID).Msg("Failed to write job records")
		return
	}
	atomic.AddInt64(&r.written, int64(len(batch)))
}

// Record enqueues a record. It returns false when the record was dropped.
func (r *AsyncJobRecorder) Record(record *model.JobRecord) bool {
	select {
	case <-r.stopCh:
		atomic.AddInt64(&r.dropped, 1)
		metrics.RecordJobRecordDropped()
		return false
	default:
	}

	select {
	case r.recordCh <- record:
		atomic.AddInt64(&r.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&r.dropped, 1)
		metrics.RecordJobRecordDropped()
		return false
	}
}

// Stop waits for queued records to be written. Records submitted after Stop are dropped.
func (r *AsyncJobRecorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.wg.Wait()
	})
}

// Stats returns the recorder counters.
func (r *AsyncJobRecorder) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&r.enqueued),
		atomic.LoadInt64(&r.dropped),
		atomic.LoadInt64(&r.written),
		atomic.LoadInt64(&r.errors)
}

// noopRecorder is used when job storage is disabled.
type noopRecorder struct{}

func (noopRecorder) Record(*model.JobRecord) bool { return true }
