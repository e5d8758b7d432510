package usecase

import (
	"context"

	"zonewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryUsecase exposes the notification audit log.
type HistoryUsecase interface {
	// List returns every history record, newest first.
	List(ctx context.Context) ([]entity.HistoryItem, error)

	// Delete removes a single record.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clear removes every record.
	Clear(ctx context.Context) error
}
