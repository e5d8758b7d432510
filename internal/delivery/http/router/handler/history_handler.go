package handler

import (
	"log/slog"
	"net/http"

	"zonewatch/internal/delivery/http/response"
	"zonewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler exposes the notification audit log.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// ListHistory returns the notification history, newest first
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	items, err := h.historyUC.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list notification history", slog.Any("error", err))

		return response.InternalServerError(c, "HISTORY_READ_FAILED", "Failed to read notification history")
	}

	return response.Success(c, http.StatusOK, items, "Notification history retrieved successfully")
}

// DeleteHistoryItem removes a single history record
func (h *HistoryHandler) DeleteHistoryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid history item ID")
	}

	if err := h.historyUC.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("failed to delete history item",
			slog.String("id", id.String()),
			slog.Any("error", err))

		return response.InternalServerError(c, "HISTORY_DELETE_FAILED", "Failed to delete history item")
	}

	return response.Success(c, http.StatusOK, nil, "History item deleted successfully")
}

// ClearHistory removes every history record
func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	if err := h.historyUC.Clear(c.Request().Context()); err != nil {
		h.logger.Error("failed to clear notification history", slog.Any("error", err))

		return response.InternalServerError(c, "HISTORY_DELETE_FAILED", "Failed to clear notification history")
	}

	return response.Success(c, http.StatusOK, nil, "Notification history cleared successfully")
}
