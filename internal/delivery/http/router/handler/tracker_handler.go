package handler

import (
	"log/slog"
	"net/http"
	"time"

	"zonewatch/internal/delivery/http/response"
	"zonewatch/internal/domain/entity"
	"zonewatch/internal/infra/location"
	"zonewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackerHandlerParams holds dependencies for TrackerHandler, injected by Fx.
type TrackerHandlerParams struct {
	fx.In

	TrackerUC usecase.TrackerUsecase
	Feed      *location.Feed
	Logger    *slog.Logger
}

// TrackerHandler exposes the location sample ingress and tracking state.
type TrackerHandler struct {
	trackerUC usecase.TrackerUsecase
	feed      *location.Feed
	logger    *slog.Logger
}

// NewTrackerHandler is the constructor for TrackerHandler
func NewTrackerHandler(params TrackerHandlerParams) *TrackerHandler {
	return &TrackerHandler{
		trackerUC: params.TrackerUC,
		feed:      params.Feed,
		logger:    params.Logger,
	}
}

// PushLocationRequest represents a raw location sample from the platform shell
type PushLocationRequest struct {
	Latitude  float64   `json:"lat" validate:"min=-90,max=90"`
	Longitude float64   `json:"lon" validate:"min=-180,max=180"`
	Timestamp time.Time `json:"timestamp"`
}

// PushLocation enqueues a location sample for evaluation
func (h *TrackerHandler) PushLocation(c echo.Context) error {
	var req PushLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location sample")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	sample := entity.Sample{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: req.Timestamp,
	}

	if err := h.feed.Publish(c.Request().Context(), sample); err != nil {
		if errors.Is(err, location.ErrFeedClosed) {
			return response.ServiceUnavailable(c, "TRACKING_STOPPED", "Location tracking is stopped")
		}

		h.logger.Error("failed to publish location sample", slog.Any("error", err))

		return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to enqueue location sample")
	}

	return response.Success(c, http.StatusAccepted, nil, "Location sample accepted")
}

// GetStatus reports membership, registry and mute state
func (h *TrackerHandler) GetStatus(c echo.Context) error {
	status, err := h.trackerUC.Status(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to read tracker status", slog.Any("error", err))

		return response.InternalServerError(c, "STATUS_FAILED", "Failed to read tracker status")
	}

	return response.Success(c, http.StatusOK, status, "Tracker status retrieved successfully")
}

// Reset dismisses all active notifications and clears zone membership
func (h *TrackerHandler) Reset(c echo.Context) error {
	if err := h.trackerUC.Reset(c.Request().Context()); err != nil {
		h.logger.Error("failed to reset tracker", slog.Any("error", err))

		return response.InternalServerError(c, "RESET_FAILED", "Failed to reset tracker state")
	}

	return response.Success(c, http.StatusOK, nil, "Tracker state reset successfully")
}
