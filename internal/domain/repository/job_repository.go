package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is a domain-specific error returned when a job posting is not found.
var ErrJobNotFound = errors.New("job not found")

// JobCounters aggregates the public tracking counters across all postings.
type JobCounters struct {
	Views  int64
	Clicks int64
}

// JobRepository defines the standard operations for job-posting persistence.
type JobRepository interface {
	// FindByID retrieves a posting by its internal database identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// FindByJobID retrieves a posting by its business identifier.
	FindByJobID(ctx context.Context, jobID string) (*entity.Job, error)

	// List retrieves postings newest first, up to limit.
	List(ctx context.Context, limit int) ([]*entity.Job, error)

	// Create persists a new posting.
	Create(ctx context.Context, job *entity.Job) error

	// Update persists the full state of an existing posting.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a posting by its internal identifier.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementCounterByJobID atomically increments the view or click counter
	// of the posting with the given business identifier.
	IncrementCounterByJobID(ctx context.Context, jobID string, event entity.TrackingEvent) error

	// IncrementCounterByID atomically increments the view or click counter of
	// the posting with the given internal identifier.
	IncrementCounterByID(ctx context.Context, id uuid.UUID, event entity.TrackingEvent) error

	// Count returns the total number of postings.
	Count(ctx context.Context) (int64, error)

	// SumCounters returns the totals of the view and click counters.
	SumCounters(ctx context.Context) (*JobCounters, error)

	// TopByClicks retrieves the most-clicked postings, up to limit.
	TopByClicks(ctx context.Context, limit int) ([]*entity.Job, error)
}
