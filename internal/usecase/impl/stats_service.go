package impl

import (
	"context"
	"log/slog"

	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topJobsLimit bounds the most-clicked list on the dashboard.
const topJobsLimit = 5

// statsService implements the StatsUsecase interface.
type statsService struct {
	jobRepo     repository.JobRepository
	accountRepo repository.AccountRepository
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	JobRepo     repository.JobRepository
	AccountRepo repository.AccountRepository
	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		jobRepo:     params.JobRepo,
		accountRepo: params.AccountRepo,
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// GetDashboardStats collects the counters and the most-clicked postings.
func (srv *statsService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	totalJobs, err := srv.jobRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count jobs")
	}

	totalAccounts, err := srv.accountRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	totalMessages, err := srv.contactRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count contact messages")
	}

	counters, err := srv.jobRepo.SumCounters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum job counters")
	}

	topJobs, err := srv.jobRepo.TopByClicks(ctx, topJobsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top jobs")
	}

	return &usecase.DashboardStats{
		TotalJobs:     totalJobs,
		TotalAccounts: totalAccounts,
		TotalMessages: totalMessages,
		TotalViews:    counters.Views,
		TotalClicks:   counters.Clicks,
		TopJobs:       topJobs,
	}, nil
}
