package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/delivery/http/validator"
	"backoffice/internal/domain/entity"
	mockusecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"
)

func newJobHandlerFixture(t *testing.T) (*JobHandler, *mockusecase.MockJobUsecase) {
	t.Helper()

	uc := mockusecase.NewMockJobUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewJobHandler(uc, logger), uc
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestJobHandler_CreateJob_ResponseCarriesLinkAliases(t *testing.T) {
	handler, uc := newJobHandlerFixture(t)

	created := &entity.Job{
		ID:           uuid.New(),
		JobID:        "manual-1700000000000",
		Title:        "Go Engineer",
		EmployerName: "Acme",
		Source:       entity.JobSourceManual,
		Category:     entity.DefaultJobCategory,
		PostedAt:     time.Now(),
		UpdatedBy:    "Admin",
	}
	created.SetApplyLink("https://apply.example.com")

	uc.On("CreateJob", mock.Anything, mock.AnythingOfType("*usecase.CreateJobInput")).
		Return(created, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/jobs",
		`{"title":"Go Engineer","employer_name":"Acme","apply_link":"https://apply.example.com"}`)

	require.NoError(t, handler.CreateJob(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			JobID     string `json:"job_id"`
			ApplyLink string `json:"apply_link"`
			JobURL    string `json:"job_url"`
			URL       string `json:"url"`
			Link      string `json:"link"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "manual-1700000000000", body.Data.JobID)

	// Older consumers read the aliases, so the payload carries all four
	// identical link fields.
	assert.Equal(t, "https://apply.example.com", body.Data.ApplyLink)
	assert.Equal(t, body.Data.ApplyLink, body.Data.JobURL)
	assert.Equal(t, body.Data.ApplyLink, body.Data.URL)
	assert.Equal(t, body.Data.ApplyLink, body.Data.Link)
}

func TestJobHandler_CreateJob_MissingRequiredFields(t *testing.T) {
	handler, uc := newJobHandlerFixture(t)

	c, _ := newJSONContext(t, http.MethodPost, "/admin/jobs", `{"title":"Go Engineer"}`)

	err := handler.CreateJob(c)
	assert.Error(t, err)
	uc.AssertNotCalled(t, "CreateJob")
}

func TestJobHandler_Track(t *testing.T) {
	handler, uc := newJobHandlerFixture(t)

	uc.On("Track", mock.Anything, &usecase.TrackInput{
		EntityID:  "manual-1700000000000",
		EventType: entity.TrackingEventClick,
	}).Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/track",
		`{"entity_id":"manual-1700000000000","event_type":"click"}`)

	require.NoError(t, handler.Track(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
