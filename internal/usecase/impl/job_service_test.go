package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service usecase.JobUsecase
	jobRepo *mockRepo.MockJobRepository
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)

	svc := NewJobService(JobServiceParams{
		JobRepo: jobRepo,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return jobServiceFixtures{
		service: svc,
		jobRepo: jobRepo,
	}
}

func TestJobService_CreateJob_DefaultsAndAliases(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.On("Create", ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(args mock.Arguments) {
			job := args.Get(1).(*entity.Job)
			assert.True(t, strings.HasPrefix(job.JobID, "manual-"))
			assert.Equal(t, entity.JobSourceManual, job.Source)
			assert.Equal(t, entity.DefaultJobCategory, job.Category)
			assert.Equal(t, "Admin", job.UpdatedBy)
			assert.Equal(t, "https://apply.example.com", job.ApplyLink)
			assert.Equal(t, job.ApplyLink, job.JobURL)
			assert.Equal(t, job.ApplyLink, job.URL)
			assert.Equal(t, job.ApplyLink, job.Link)
			assert.False(t, job.PostedAt.IsZero())
		}).
		Return(nil)

	job, err := fx.service.CreateJob(ctx, &usecase.CreateJobInput{
		Title:        "Go Engineer",
		EmployerName: "Acme",
		ApplyLink:    "https://apply.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Go Engineer", job.Title)
}

func TestJobService_CreateJob_MissingRequiredFields(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateJobInput
	}{
		{name: "missing title", input: &usecase.CreateJobInput{EmployerName: "Acme", ApplyLink: "https://x"}},
		{name: "missing employer", input: &usecase.CreateJobInput{Title: "Role", ApplyLink: "https://x"}},
		{name: "missing apply link", input: &usecase.CreateJobInput{Title: "Role", EmployerName: "Acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := fx.service.CreateJob(ctx, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, job)
		})
	}
	fx.jobRepo.AssertNotCalled(t, "Create")
}

func TestJobService_CreateJob_EditorAttribution(t *testing.T) {
	tests := []struct {
		name       string
		updatedBy  string
		wantEditor string
	}{
		{name: "supplied editor kept", updatedBy: "Dana", wantEditor: "Dana"},
		{name: "empty editor defaults to Admin", updatedBy: "", wantEditor: "Admin"},
		// A manual creation must never masquerade as the ingest pipeline.
		{name: "System rewritten to Admin", updatedBy: "System", wantEditor: "Admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestJobService(t)
			ctx := context.Background()

			fx.jobRepo.On("Create", ctx, mock.AnythingOfType("*entity.Job")).
				Run(func(args mock.Arguments) {
					job := args.Get(1).(*entity.Job)
					assert.Equal(t, tt.wantEditor, job.UpdatedBy)
				}).
				Return(nil)

			_, err := fx.service.CreateJob(ctx, &usecase.CreateJobInput{
				Title:        "Go Engineer",
				EmployerName: "Acme",
				ApplyLink:    "https://apply.example.com",
				UpdatedBy:    tt.updatedBy,
			})
			require.NoError(t, err)
		})
	}
}

func TestJobService_UpdateJob_ApplyLinkMirrorsAliases(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	id := uuid.New()
	existing := &entity.Job{
		ID:           id,
		JobID:        "manual-1700000000000",
		Title:        "Go Engineer",
		EmployerName: "Acme",
		Source:       entity.JobSourceManual,
		Category:     entity.DefaultJobCategory,
	}
	existing.SetApplyLink("https://old.example.com")

	newLink := "https://new.example.com"

	fx.jobRepo.On("FindByID", ctx, id).Return(existing, nil)
	fx.jobRepo.On("Update", ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(args mock.Arguments) {
			job := args.Get(1).(*entity.Job)
			assert.Equal(t, newLink, job.ApplyLink)
			assert.Equal(t, newLink, job.JobURL)
			assert.Equal(t, newLink, job.URL)
			assert.Equal(t, newLink, job.Link)
		}).
		Return(nil)

	job, err := fx.service.UpdateJob(ctx, &usecase.UpdateJobInput{
		JobID:     id,
		ApplyLink: &newLink,
	})
	require.NoError(t, err)
	assert.Equal(t, newLink, job.Link)
}

func TestJobService_UpdateJob_EditorAttribution(t *testing.T) {
	dana := "Dana"

	tests := []struct {
		name       string
		updatedBy  *string
		wantEditor string
	}{
		// A partial edit that does not touch the editor keeps the stored
		// attribution, including the ingest pipeline's "System".
		{name: "omitted editor preserved", updatedBy: nil, wantEditor: "System"},
		{name: "supplied editor applied", updatedBy: &dana, wantEditor: "Dana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestJobService(t)
			ctx := context.Background()

			id := uuid.New()
			existing := &entity.Job{ID: id, Title: "Role", EmployerName: "Acme", UpdatedBy: "System"}

			newTitle := "Senior Role"

			fx.jobRepo.On("FindByID", ctx, id).Return(existing, nil)
			fx.jobRepo.On("Update", ctx, mock.AnythingOfType("*entity.Job")).
				Run(func(args mock.Arguments) {
					job := args.Get(1).(*entity.Job)
					assert.Equal(t, newTitle, job.Title)
					assert.Equal(t, tt.wantEditor, job.UpdatedBy)
				}).
				Return(nil)

			_, err := fx.service.UpdateJob(ctx, &usecase.UpdateJobInput{
				JobID:     id,
				Title:     &newTitle,
				UpdatedBy: tt.updatedBy,
			})
			require.NoError(t, err)
		})
	}
}

func TestJobService_UpdateJob_NotFound(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.jobRepo.On("FindByID", ctx, id).Return(nil, repository.ErrJobNotFound)

	job, err := fx.service.UpdateJob(ctx, &usecase.UpdateJobInput{JobID: id})
	require.ErrorIs(t, err, domainerrors.ErrJobNotFound)
	assert.Nil(t, job)
}

func TestJobService_Track_ByBusinessID(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.On("IncrementCounterByJobID", ctx, "manual-1700000000000", entity.TrackingEventClick).
		Return(nil)

	err := fx.service.Track(ctx, &usecase.TrackInput{
		EntityID:  "manual-1700000000000",
		EventType: entity.TrackingEventClick,
	})
	require.NoError(t, err)
	fx.jobRepo.AssertNotCalled(t, "IncrementCounterByID")
}

func TestJobService_Track_FallsBackToUUID(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	id := uuid.New()

	fx.jobRepo.On("IncrementCounterByJobID", ctx, id.String(), entity.TrackingEventView).
		Return(repository.ErrJobNotFound)
	fx.jobRepo.On("IncrementCounterByID", ctx, id, entity.TrackingEventView).
		Return(nil)

	err := fx.service.Track(ctx, &usecase.TrackInput{
		EntityID:  id.String(),
		EventType: entity.TrackingEventView,
	})
	require.NoError(t, err)
}

func TestJobService_Track_UnknownEntity(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.On("IncrementCounterByJobID", ctx, "nope", entity.TrackingEventView).
		Return(repository.ErrJobNotFound)

	// "nope" is not a UUID, so no fallback lookup happens.
	err := fx.service.Track(ctx, &usecase.TrackInput{
		EntityID:  "nope",
		EventType: entity.TrackingEventView,
	})
	require.ErrorIs(t, err, domainerrors.ErrJobNotFound)
	fx.jobRepo.AssertNotCalled(t, "IncrementCounterByID")
}

func TestJobService_Track_InvalidEvent(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	err := fx.service.Track(ctx, &usecase.TrackInput{
		EntityID:  "manual-1",
		EventType: entity.TrackingEvent("hover"),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.jobRepo.AssertNotCalled(t, "IncrementCounterByJobID")
}

func TestJobService_ListJobs_UsesLimit(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.On("List", ctx, listJobsLimit).Return([]*entity.Job{}, nil)

	jobs, err := fx.service.ListJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
