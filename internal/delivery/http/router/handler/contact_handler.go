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

// ContactHandler holds dependencies for contact-inbox handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactResponse(message *entity.ContactMessage) contactResponse {
	return contactResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// CreateMessage handles the public contact submission.
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.CreateMessage(c.Request().Context(), &usecase.CreateContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(message), "Message received")
}

// ListMessages handles the inbox listing request.
func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.uc.ListMessages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]contactResponse, 0, len(messages))
	for _, message := range messages {
		items = append(items, toContactResponse(message))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// DeleteMessage handles the inbox deletion request.
func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted")
}
