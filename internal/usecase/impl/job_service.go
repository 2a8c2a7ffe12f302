package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listJobsLimit bounds the admin job listing.
const listJobsLimit = 500

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo repository.JobRepository
	logger  *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo repository.JobRepository
	Logger  *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo: params.JobRepo,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListJobs retrieves postings newest first, bounded by the service limit.
func (srv *jobService) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.List(ctx, listJobsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

// GetJob retrieves a posting by its internal ID.
func (srv *jobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	return job, nil
}

// CreateJob creates a manual posting. The business ID is derived from the
// creation time, and the apply link is mirrored into every legacy alias.
func (srv *jobService) CreateJob(ctx context.Context, input *usecase.CreateJobInput) (*entity.Job, error) {
	if input.Title == "" || input.EmployerName == "" || input.ApplyLink == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title, employer name and apply link are required")
	}

	now := time.Now()

	job := &entity.Job{
		JobID:        "manual-" + strconv.FormatInt(now.UnixMilli(), 10),
		Title:        input.Title,
		EmployerName: input.EmployerName,
		EmployerLogo: input.EmployerLogo,
		City:         input.City,
		Country:      input.Country,
		ContactEmail: input.ContactEmail,
		WorkMode:     input.WorkMode,
		Text:         input.Text,
		Source:       entity.JobSourceManual,
		Category:     input.Category,
		PostedAt:     now,
		UpdatedBy:    editorName(input.UpdatedBy),
	}
	if job.Category == "" {
		job.Category = entity.DefaultJobCategory
	}
	job.SetApplyLink(input.ApplyLink)

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Job created",
		slog.String("jobID", job.JobID),
		slog.String("title", job.Title),
	)

	return job, nil
}

// UpdateJob applies a partial mutation. A new apply link propagates to all
// four alias fields in the same update statement.
func (srv *jobService) UpdateJob(ctx context.Context, input *usecase.UpdateJobInput) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.EmployerName != nil {
		job.EmployerName = *input.EmployerName
	}
	if input.EmployerLogo != nil {
		job.EmployerLogo = *input.EmployerLogo
	}
	if input.City != nil {
		job.City = *input.City
	}
	if input.Country != nil {
		job.Country = *input.Country
	}
	if input.ContactEmail != nil {
		job.ContactEmail = *input.ContactEmail
	}
	if input.WorkMode != nil {
		job.WorkMode = *input.WorkMode
	}
	if input.Text != nil {
		job.Text = *input.Text
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.ApplyLink != nil {
		job.SetApplyLink(*input.ApplyLink)
	}
	if input.UpdatedBy != nil {
		job.UpdatedBy = *input.UpdatedBy
	}

	if err := srv.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, err
	}

	return job, nil
}

// DeleteJob removes a posting by its internal ID.
func (srv *jobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if err := srv.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to delete job")
	}

	srv.log(ctx).Info("Job deleted", slog.String("id", id.String()))

	return nil
}

// Track increments a view or click counter by exactly one. The entity ID is
// resolved as a business job ID first; when no row matches and the value
// parses as a UUID, the internal identifier is tried instead.
func (srv *jobService) Track(ctx context.Context, input *usecase.TrackInput) error {
	if !input.EventType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown tracking event: " + input.EventType.String())
	}
	if input.EntityID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("entity ID is required")
	}

	err := srv.jobRepo.IncrementCounterByJobID(ctx, input.EntityID, input.EventType)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrJobNotFound) {
		return errors.Wrap(err, "failed to increment counter")
	}

	id, parseErr := uuid.Parse(input.EntityID)
	if parseErr != nil {
		return domainerrors.ErrJobNotFound
	}

	if err := srv.jobRepo.IncrementCounterByID(ctx, id, input.EventType); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to increment counter")
	}

	return nil
}

// editorName attributes a manual creation to a concrete editor. Automated
// pipelines write "System"; manual creations must never masquerade as them,
// so both an absent name and "System" become "Admin".
func editorName(updatedBy string) string {
	if updatedBy == "" || updatedBy == "System" {
		return "Admin"
	}

	return updatedBy
}
