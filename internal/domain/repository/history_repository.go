package repository

import (
	"context"

	"zonewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository persists the append-only notification audit log.
type HistoryRepository interface {
	// Append adds a record. Records are never mutated afterwards.
	Append(ctx context.Context, item entity.HistoryItem) error

	// List returns every record, newest first.
	List(ctx context.Context) ([]entity.HistoryItem, error)

	// Delete removes a single record by ID. Unknown IDs are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clear removes every record.
	Clear(ctx context.Context) error
}
