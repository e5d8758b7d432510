package handler

import (
	"log/slog"
	"net/http"
	"time"

	"zonewatch/internal/delivery/http/response"
	"zonewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MuteHandlerParams holds dependencies for MuteHandler, injected by Fx.
type MuteHandlerParams struct {
	fx.In

	MuteUC usecase.MuteUsecase
	Logger *slog.Logger
}

// MuteHandler exposes the mute policy settings.
type MuteHandler struct {
	muteUC usecase.MuteUsecase
	logger *slog.Logger
}

// NewMuteHandler is the constructor for MuteHandler
func NewMuteHandler(params MuteHandlerParams) *MuteHandler {
	return &MuteHandler{
		muteUC: params.MuteUC,
		logger: params.Logger,
	}
}

// SetMuteRequest toggles the permanent mute
type SetMuteRequest struct {
	Muted bool `json:"muted"`
}

// TimedMuteRequest arms a timed mute
type TimedMuteRequest struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// MuteStateResponse is the current mute state plus remaining timed minutes
type MuteStateResponse struct {
	IsMuted          bool     `json:"is_muted"`
	MinutesRemaining *int     `json:"minutes_remaining"`
	MutedAlertIDs    []string `json:"muted_alert_ids"`
}

// GetMute returns the current mute settings
func (h *MuteHandler) GetMute(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.muteUC.Settings(ctx)
	if err != nil {
		h.logger.Error("failed to load mute settings", slog.Any("error", err))

		return response.InternalServerError(c, "MUTE_READ_FAILED", "Failed to read mute settings")
	}

	minutes, err := h.muteUC.MinutesRemaining(ctx)
	if err != nil {
		h.logger.Error("failed to compute remaining mute time", slog.Any("error", err))

		return response.InternalServerError(c, "MUTE_READ_FAILED", "Failed to read mute settings")
	}

	return response.Success(c, http.StatusOK, MuteStateResponse{
		IsMuted:          settings.IsMuted,
		MinutesRemaining: minutes,
		MutedAlertIDs:    settings.MutedAlertIDs,
	}, "Mute settings retrieved successfully")
}

// SetMute toggles the permanent mute
func (h *MuteHandler) SetMute(c echo.Context) error {
	var req SetMuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mute input")
	}

	if err := h.muteUC.SetMuted(c.Request().Context(), req.Muted); err != nil {
		h.logger.Error("failed to update mute settings", slog.Any("error", err))

		return response.InternalServerError(c, "MUTE_UPDATE_FAILED", "Failed to update mute settings")
	}

	return response.Success(c, http.StatusOK, nil, "Mute settings updated successfully")
}

// SetTimedMute arms a timed mute for the requested number of minutes
func (h *MuteHandler) SetTimedMute(c echo.Context) error {
	var req TimedMuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timed mute input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	d := time.Duration(req.Minutes) * time.Minute
	if err := h.muteUC.MuteFor(c.Request().Context(), d); err != nil {
		h.logger.Error("failed to arm timed mute", slog.Any("error", err))

		return response.InternalServerError(c, "MUTE_UPDATE_FAILED", "Failed to update mute settings")
	}

	return response.Success(c, http.StatusOK, nil, "Timed mute armed successfully")
}

// SetAlertMute toggles the per-zone mute for one alert point
func (h *MuteHandler) SetAlertMute(c echo.Context) error {
	alertPointID := c.Param("id")
	if alertPointID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing alert point ID")
	}

	var req SetMuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mute input")
	}

	if err := h.muteUC.SetAlertMuted(c.Request().Context(), alertPointID, req.Muted); err != nil {
		h.logger.Error("failed to update per-alert mute",
			slog.String("alertPointID", alertPointID),
			slog.Any("error", err))

		return response.InternalServerError(c, "MUTE_UPDATE_FAILED", "Failed to update mute settings")
	}

	return response.Success(c, http.StatusOK, nil, "Per-alert mute updated successfully")
}
