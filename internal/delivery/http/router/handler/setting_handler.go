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

// SettingHandler holds dependencies for setting handlers.
type SettingHandler struct {
	uc     usecase.SettingUsecase
	logger *slog.Logger
}

// NewSettingHandler is the constructor for SettingHandler, injected by Fx.
func NewSettingHandler(uc usecase.SettingUsecase, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{
		uc:     uc,
		logger: logger,
	}
}

type setMaintenanceRequest struct {
	IsEnabled bool `json:"is_enabled"`
}

type settingResponse struct {
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
}

func toSettingResponse(setting *entity.Setting) settingResponse {
	return settingResponse{
		Name:      setting.Name,
		IsEnabled: setting.IsEnabled,
	}
}

// GetMaintenanceMode handles the public maintenance-mode read.
func (h *SettingHandler) GetMaintenanceMode(c echo.Context) error {
	setting, err := h.uc.GetMaintenanceMode(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingResponse(setting), "")
}

// SetMaintenanceMode handles the admin maintenance-mode write.
func (h *SettingHandler) SetMaintenanceMode(c echo.Context) error {
	var req setMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}

	setting, err := h.uc.SetMaintenanceMode(c.Request().Context(), &usecase.SetMaintenanceModeInput{
		IsEnabled: req.IsEnabled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingResponse(setting), "Maintenance mode updated")
}
