package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateJobInput defines the data required to create a job posting manually.
type CreateJobInput struct {
	Title        string
	EmployerName string
	EmployerLogo string
	City         string
	Country      string
	ContactEmail string
	WorkMode     string
	ApplyLink    string
	Text         string
	Category     string
	UpdatedBy    string
}

// UpdateJobInput defines a partial job mutation. Nil fields are left
// untouched. A non-nil ApplyLink propagates to every legacy link alias.
type UpdateJobInput struct {
	JobID        uuid.UUID
	Title        *string
	EmployerName *string
	EmployerLogo *string
	City         *string
	Country      *string
	ContactEmail *string
	WorkMode     *string
	ApplyLink    *string
	Text         *string
	Category     *string
	UpdatedBy    *string
}

// TrackInput identifies the posting and the counter to increment. EntityID is
// the business job ID, or the internal UUID as a fallback.
type TrackInput struct {
	EntityID  string
	EventType entity.TrackingEvent
}

// JobUsecase defines the interface for job administration and public tracking.
type JobUsecase interface {
	// ListJobs retrieves postings newest first, bounded by the service limit.
	ListJobs(ctx context.Context) ([]*entity.Job, error)

	// GetJob retrieves a posting by its internal ID.
	GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// CreateJob creates a manual posting with generated business ID and defaults.
	CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error)

	// UpdateJob applies a partial mutation, keeping the link aliases identical.
	UpdateJob(ctx context.Context, input *UpdateJobInput) (*entity.Job, error)

	// DeleteJob removes a posting by its internal ID.
	DeleteJob(ctx context.Context, id uuid.UUID) error

	// Track increments a view or click counter by exactly one.
	Track(ctx context.Context, input *TrackInput) error
}
