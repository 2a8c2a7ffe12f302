package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetDashboardStats(t *testing.T) {
	jobRepo := mockRepo.NewMockJobRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)

	svc := NewStatsService(StatsServiceParams{
		JobRepo:     jobRepo,
		AccountRepo: accountRepo,
		ContactRepo: contactRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	topJobs := []*entity.Job{
		{ID: uuid.New(), Title: "Most Clicked", Clicks: 90},
		{ID: uuid.New(), Title: "Runner Up", Clicks: 40},
	}

	jobRepo.On("Count", ctx).Return(int64(120), nil)
	accountRepo.On("Count", ctx).Return(int64(7), nil)
	contactRepo.On("Count", ctx).Return(int64(15), nil)
	jobRepo.On("SumCounters", ctx).Return(&repository.JobCounters{Views: 4200, Clicks: 130}, nil)
	jobRepo.On("TopByClicks", ctx, topJobsLimit).Return(topJobs, nil)

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalJobs)
	assert.Equal(t, int64(7), stats.TotalAccounts)
	assert.Equal(t, int64(15), stats.TotalMessages)
	assert.Equal(t, int64(4200), stats.TotalViews)
	assert.Equal(t, int64(130), stats.TotalClicks)
	assert.Len(t, stats.TopJobs, 2)
}
