package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// FindByID retrieves a posting by its internal database identifier.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	return toJobDomain(&jobM), nil
}

// FindByJobID retrieves a posting by its business identifier.
func (repo *jobRepository) FindByJobID(ctx context.Context, jobID string) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by business ID")
	}

	return toJobDomain(&jobM), nil
}

// List retrieves postings newest first, up to limit.
func (repo *jobRepository) List(ctx context.Context, limit int) ([]*entity.Job, error) {
	var jobModels []*model.JobModel

	query := repo.db.WithContext(ctx).Order("posted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// Create persists a new posting.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateJob
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required job information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	// Update the entity with generated values
	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Update persists the full state of an existing posting.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", job.ID).
		Select("*").
		Omit("id", "created_at", "views", "clicks").
		Updates(jobM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateJob
		}

		return errors.Wrap(result.Error, "failed to update job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// Delete removes a posting by its internal identifier.
func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// IncrementCounterByJobID atomically increments the view or click counter
// of the posting with the given business identifier.
func (repo *jobRepository) IncrementCounterByJobID(ctx context.Context, jobID string, event entity.TrackingEvent) error {
	column, err := counterColumn(event)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("job_id = ?", jobID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment counter by business ID")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// IncrementCounterByID atomically increments the view or click counter of
// the posting with the given internal identifier.
func (repo *jobRepository) IncrementCounterByID(ctx context.Context, id uuid.UUID, event entity.TrackingEvent) error {
	column, err := counterColumn(event)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment counter by ID")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// Count returns the total number of postings.
func (repo *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count jobs")
	}

	return count, nil
}

// SumCounters returns the totals of the view and click counters.
func (repo *jobRepository) SumCounters(ctx context.Context) (*repository.JobCounters, error) {
	var counters repository.JobCounters

	if err := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(clicks), 0) AS clicks").
		Scan(&counters).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum job counters")
	}

	return &counters, nil
}

// TopByClicks retrieves the most-clicked postings, up to limit.
func (repo *jobRepository) TopByClicks(ctx context.Context, limit int) ([]*entity.Job, error) {
	var jobModels []*model.JobModel

	if err := repo.db.WithContext(ctx).
		Order("clicks DESC").
		Limit(limit).
		Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top jobs by clicks")
	}

	jobs := make([]*entity.Job, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

func counterColumn(event entity.TrackingEvent) (string, error) {
	switch event {
	case entity.TrackingEventView:
		return "views", nil
	case entity.TrackingEventClick:
		return "clicks", nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown tracking event: " + event.String())
	}
}

// --- Mapper Functions ---

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:           data.ID,
		JobID:        data.JobID,
		Title:        data.Title,
		EmployerName: data.EmployerName,
		EmployerLogo: data.EmployerLogo,
		City:         data.City,
		Country:      data.Country,
		ContactEmail: data.ContactEmail,
		WorkMode:     data.WorkMode,
		ApplyLink:    data.ApplyLink,
		JobURL:       data.JobURL,
		URL:          data.URL,
		Link:         data.Link,
		Text:         data.Text,
		Source:       entity.JobSource(data.Source),
		Category:     data.Category,
		PostedAt:     data.PostedAt,
		UpdatedBy:    data.UpdatedBy,
		Views:        data.Views,
		Clicks:       data.Clicks,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromJobDomain converts a domain Job entity to a GORM JobModel.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:           data.ID,
		JobID:        data.JobID,
		Title:        data.Title,
		EmployerName: data.EmployerName,
		EmployerLogo: data.EmployerLogo,
		City:         data.City,
		Country:      data.Country,
		ContactEmail: data.ContactEmail,
		WorkMode:     data.WorkMode,
		ApplyLink:    data.ApplyLink,
		JobURL:       data.JobURL,
		URL:          data.URL,
		Link:         data.Link,
		Text:         data.Text,
		Source:       data.Source.String(),
		Category:     data.Category,
		PostedAt:     data.PostedAt,
		UpdatedBy:    data.UpdatedBy,
		Views:        data.Views,
		Clicks:       data.Clicks,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
