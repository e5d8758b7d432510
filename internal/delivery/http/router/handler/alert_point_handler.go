package handler

import (
	"log/slog"
	"net/http"

	"zonewatch/internal/delivery/http/response"
	"zonewatch/internal/usecase"
	"zonewatch/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlertPointHandlerParams holds dependencies for AlertPointHandler, injected by Fx.
type AlertPointHandlerParams struct {
	fx.In

	AlertPointUC usecase.AlertPointUsecase
	Logger       *slog.Logger
}

// AlertPointHandler exposes the tracked zone set.
type AlertPointHandler struct {
	alertPointUC usecase.AlertPointUsecase
	logger       *slog.Logger
}

// NewAlertPointHandler is the constructor for AlertPointHandler
func NewAlertPointHandler(params AlertPointHandlerParams) *AlertPointHandler {
	return &AlertPointHandler{
		alertPointUC: params.AlertPointUC,
		logger:       params.Logger,
	}
}

// SyncResponse reports the outcome of an alert-point sync
type SyncResponse struct {
	Imported int `json:"imported"`
}

// ListAlertPoints returns the stored zone set
func (h *AlertPointHandler) ListAlertPoints(c echo.Context) error {
	points, err := h.alertPointUC.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list alert points", slog.Any("error", err))

		return response.InternalServerError(c, "ALERT_POINTS_READ_FAILED", "Failed to read alert points")
	}

	return response.Success(c, http.StatusOK, points, "Alert points retrieved successfully")
}

// SyncAlertPoints replaces the stored zone set from the remote source
func (h *AlertPointHandler) SyncAlertPoints(c echo.Context) error {
	imported, err := h.alertPointUC.Sync(c.Request().Context())
	if err != nil {
		if errors.Is(err, impl.ErrSourceNotConfigured) {
			return response.Conflict(c, "SOURCE_NOT_CONFIGURED", "No alert point source configured")
		}

		h.logger.Error("failed to sync alert points", slog.Any("error", err))

		return response.InternalServerError(c, "SYNC_FAILED", "Failed to sync alert points")
	}

	return response.Success(c, http.StatusOK, SyncResponse{Imported: imported}, "Alert points synced successfully")
}
