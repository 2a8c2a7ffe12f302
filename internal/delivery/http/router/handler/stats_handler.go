package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the dashboard stats handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

type statsResponse struct {
	TotalJobs     int64         `json:"total_jobs"`
	TotalAccounts int64         `json:"total_accounts"`
	TotalMessages int64         `json:"total_messages"`
	TotalViews    int64         `json:"total_views"`
	TotalClicks   int64         `json:"total_clicks"`
	TopJobs       []jobResponse `json:"top_jobs"`
}

// GetDashboardStats handles the dashboard aggregates request.
func (h *StatsHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	topJobs := make([]jobResponse, 0, len(stats.TopJobs))
	for _, job := range stats.TopJobs {
		topJobs = append(topJobs, toJobResponse(job))
	}

	return response.Success(c, http.StatusOK, statsResponse{
		TotalJobs:     stats.TotalJobs,
		TotalAccounts: stats.TotalAccounts,
		TotalMessages: stats.TotalMessages,
		TotalViews:    stats.TotalViews,
		TotalClicks:   stats.TotalClicks,
		TopJobs:       topJobs,
	}, "")
}
