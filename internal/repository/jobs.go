package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/translate-service/internal/domain/model"
)

// maxQueryLimit caps a single page of job records.
const maxQueryLimit = 500

// JobsRepository stores translation job records.
type JobsRepository struct {
	collection *mongo.Collection
}

// NewJobsRepository creates a new jobs repository.
func NewJobsRepository(db *MongoDB) *JobsRepository {
	return &JobsRepository{
		collection: db.Jobs,
	}
}

func prepare(record *model.JobRecord) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
}

// Create inserts a single job record.
func (r *JobsRepository) Create(ctx context.Context, record *model.JobRecord) error {
	prepare(record)
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// CreateMany inserts job records in bulk. Order is not significant.
func (r *JobsRepository) CreateMany(ctx context.Context, records []*model.JobRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i, record := range records {
		prepare(record)
		docs[i] = record
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func jobFilter(opts model.JobQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Kind != "" {
		filter["kind"] = opts.Kind
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Since != nil {
		filter["created_at"] = bson.M{"$gte": *opts.Since}
	}
	return filter
}

// Query returns job records newest first.
func (r *JobsRepository) Query(ctx context.Context, opts model.JobQueryOptions) ([]*model.JobRecord, error) {
	limit := opts.Limit
	if limit <= 0 || limit > maxQueryLimit {
		limit = maxQueryLimit
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, jobFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*model.JobRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of job records matching opts. Limit and Skip are ignored.
func (r *JobsRepository) Count(ctx context.Context, opts model.JobQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, jobFilter(opts))
}
