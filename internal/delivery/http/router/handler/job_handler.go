package handler

import (
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for job administration and tracking handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		uc:     uc,
		logger: logger,
	}
}

type createJobRequest struct {
	Title        string `json:"title" validate:"required"`
	EmployerName string `json:"employer_name" validate:"required"`
	EmployerLogo string `json:"employer_logo"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ContactEmail string `json:"contact_email"`
	WorkMode     string `json:"work_mode"`
	ApplyLink    string `json:"apply_link" validate:"required,url"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	UpdatedBy    string `json:"updated_by"`
}

type updateJobRequest struct {
	Title        *string `json:"title"`
	EmployerName *string `json:"employer_name"`
	EmployerLogo *string `json:"employer_logo"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	ContactEmail *string `json:"contact_email"`
	WorkMode     *string `json:"work_mode"`
	ApplyLink    *string `json:"apply_link"`
	Text         *string `json:"text"`
	Category     *string `json:"category"`
	UpdatedBy    *string `json:"updated_by"`
}

type trackRequest struct {
	EntityID  string `json:"entity_id" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
}

// jobResponse is the wire form of a job posting.
type jobResponse struct {
	ID           string    `json:"id"`
	JobID        string    `json:"job_id"`
	Title        string    `json:"title"`
	EmployerName string    `json:"employer_name"`
	EmployerLogo string    `json:"employer_logo,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	WorkMode     string    `json:"work_mode,omitempty"`
	ApplyLink    string    `json:"apply_link"`
	JobURL       string    `json:"job_url"`
	URL          string    `json:"url"`
	Link         string    `json:"link"`
	Text         string    `json:"text,omitempty"`
	Source       string    `json:"source"`
	Category     string    `json:"category"`
	PostedAt     time.Time `json:"posted_at"`
	UpdatedBy    string    `json:"updated_by,omitempty"`
	Views        int64     `json:"views"`
	Clicks       int64     `json:"clicks"`
}

func toJobResponse(job *entity.Job) jobResponse {
	return jobResponse{
		ID:           job.ID.String(),
		JobID:        job.JobID,
		Title:        job.Title,
		EmployerName: job.EmployerName,
		EmployerLogo: job.EmployerLogo,
		City:         job.City,
		Country:      job.Country,
		ContactEmail: job.ContactEmail,
		WorkMode:     job.WorkMode,
		ApplyLink:    job.ApplyLink,
		JobURL:       job.JobURL,
		URL:          job.URL,
		Link:         job.Link,
		Text:         job.Text,
		Source:       job.Source.String(),
		Category:     job.Category,
		PostedAt:     job.PostedAt,
		UpdatedBy:    job.UpdatedBy,
		Views:        job.Views,
		Clicks:       job.Clicks,
	}
}

// ListJobs handles the job listing request.
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.uc.ListJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, toJobResponse(job))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetJob handles the single-job request.
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	job, err := h.uc.GetJob(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job), "")
}

// CreateJob handles the manual job creation request.
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	job, err := h.uc.CreateJob(c.Request().Context(), &usecase.CreateJobInput{
		Title:        req.Title,
		EmployerName: req.EmployerName,
		EmployerLogo: req.EmployerLogo,
		City:         req.City,
		Country:      req.Country,
		ContactEmail: req.ContactEmail,
		WorkMode:     req.WorkMode,
		ApplyLink:    req.ApplyLink,
		Text:         req.Text,
		Category:     req.Category,
		UpdatedBy:    req.UpdatedBy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toJobResponse(job), "Job created")
}

// UpdateJob handles the partial job mutation request.
func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	job, err := h.uc.UpdateJob(c.Request().Context(), &usecase.UpdateJobInput{
		JobID:        id,
		Title:        req.Title,
		EmployerName: req.EmployerName,
		EmployerLogo: req.EmployerLogo,
		City:         req.City,
		Country:      req.Country,
		ContactEmail: req.ContactEmail,
		WorkMode:     req.WorkMode,
		ApplyLink:    req.ApplyLink,
		Text:         req.Text,
		Category:     req.Category,
		UpdatedBy:    req.UpdatedBy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job), "Job updated")
}

// DeleteJob handles the job deletion request.
func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteJob(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job deleted")
}

// Track handles the public counter-increment request.
func (h *JobHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.Track(c.Request().Context(), &usecase.TrackInput{
		EntityID:  req.EntityID,
		EventType: entity.TrackingEvent(req.EventType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event recorded")
}
