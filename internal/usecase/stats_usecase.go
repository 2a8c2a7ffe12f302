package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// DashboardStats aggregates the headline numbers shown on the back-office
// dashboard.
type DashboardStats struct {
	TotalJobs     int64
	TotalAccounts int64
	TotalMessages int64
	TotalViews    int64
	TotalClicks   int64
	TopJobs       []*entity.Job
}

// StatsUsecase defines the interface for dashboard aggregates.
type StatsUsecase interface {
	// GetDashboardStats collects the counters and the most-clicked postings.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
