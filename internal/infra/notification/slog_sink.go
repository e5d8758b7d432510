package notification

import (
	"context"
	"log/slog"

	"zonewatch/internal/domain/service"

	"github.com/google/uuid"
)

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a sink that only logs deliveries and dismissals. It is
// the fallback when Firebase is not configured.
func NewSlogSink(logger *slog.Logger) service.NotificationSink {
	return &slogSink{logger: logger}
}

func (s *slogSink) Deliver(_ context.Context, title, body string, data map[string]string) (string, error) {
	handle := uuid.NewString()
	s.logger.Info("delivering notification",
		slog.String("handle", handle),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data))

	return handle, nil
}

func (s *slogSink) Dismiss(_ context.Context, handle string) error {
	s.logger.Info("dismissing notification", slog.String("handle", handle))

	return nil
}
