// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleCallbackRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type syncAccountRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// sessionResponse is the wire form of a successful sign-in.
type sessionResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

// accountResponse is the wire form of an account, without the password hash.
type accountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
		Role:      account.Role.String(),
		IsActive:  account.IsActive,
	}
}

// Login handles the credentials login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		Token:   output.Token,
		Account: toAccountResponse(output.Account),
	}, "Login successful")
}

// GoogleCallback handles the Google sign-in callback with an ID token.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var req googleCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		Token:   output.Token,
		Account: toAccountResponse(output.Account),
	}, "Sign-in successful")
}

// SyncAccount handles the external-identity profile upsert.
func (h *AuthHandler) SyncAccount(c echo.Context) error {
	var req syncAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync input")
	}

	output, err := h.uc.SyncAccount(c.Request().Context(), &usecase.SyncAccountInput{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, toAccountResponse(output.Account), "Account synchronized")
}
