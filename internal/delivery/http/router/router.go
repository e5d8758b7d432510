package router

import (
	"net/http"

	"zonewatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the control-plane server mounts.
type RouterParams struct {
	fx.In

	TrackerHandler    *handler.TrackerHandler
	MuteHandler       *handler.MuteHandler
	HistoryHandler    *handler.HistoryHandler
	AlertPointHandler *handler.AlertPointHandler
}

// Router wires handlers to routes.
type Router struct {
	params RouterParams
}

// NewRouter creates the router.
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes mounts every route on the echo server.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/location", r.params.TrackerHandler.PushLocation)
	e.GET("/status", r.params.TrackerHandler.GetStatus)
	e.POST("/reset", r.params.TrackerHandler.Reset)

	e.GET("/mute", r.params.MuteHandler.GetMute)
	e.PUT("/mute", r.params.MuteHandler.SetMute)
	e.PUT("/mute/timed", r.params.MuteHandler.SetTimedMute)
	e.PUT("/mute/alerts/:id", r.params.MuteHandler.SetAlertMute)

	e.GET("/history", r.params.HistoryHandler.ListHistory)
	e.DELETE("/history/:id", r.params.HistoryHandler.DeleteHistoryItem)
	e.DELETE("/history", r.params.HistoryHandler.ClearHistory)

	e.GET("/alert-points", r.params.AlertPointHandler.ListAlertPoints)
	e.POST("/alert-points/sync", r.params.AlertPointHandler.SyncAlertPoints)
}
