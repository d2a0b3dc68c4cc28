package model

import "time"

// JobKind names the job types the orchestrator runs.
type JobKind string

const (
	JobText     JobKind = "text"
	JobDocument JobKind = "document"
	JobImage    JobKind = "image"
)

// Job statuses.
const (
	JobStatusSuccess  = "success"
	JobStatusFailed   = "failed"
	JobStatusDegraded = "degraded"
	JobStatusNoop     = "noop"
)

// JobRecord is an audit entry for one finished job.
// It holds counts only, never the source text or its translation.
//
// @Description Audit record of a translation job
type JobRecord struct {
	ID         string    `bson:"_id" json:"id"`
	Kind       JobKind   `bson:"kind" json:"kind" example:"text"`
	SourceLang string    `bson:"source_lang" json:"sourceLang" example:"auto"`
	TargetLang string    `bson:"target_lang" json:"targetLang" example:"zh"`
	Files      int       `bson:"files,omitempty" json:"files,omitempty"`
	Characters int       `bson:"characters" json:"characters"`
	Chunks     int       `bson:"chunks" json:"chunks"`
	Status     string    `bson:"status" json:"status" example:"success"`
	ErrorCode  string    `bson:"error_code,omitempty" json:"errorCode,omitempty"`
	DurationMs int64     `bson:"duration_ms" json:"durationMs"`
	RequestID  string    `bson:"request_id,omitempty" json:"requestId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// JobQueryOptions filters job record queries.
type JobQueryOptions struct {
	Kind      JobKind
	Status    string
	RequestID string
	Since     *time.Time
	Limit     int
	Skip      int
}
