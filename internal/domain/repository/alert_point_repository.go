// Package repository defines the persistence contracts of the domain.
package repository

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// AlertPointRepository stores the tracked zone set. Sync semantics are bulk
// replacement only; there is no partial update.
type AlertPointRepository interface {
	// ReplaceAll swaps the stored zone set wholesale.
	ReplaceAll(ctx context.Context, points []entity.AlertPoint) error

	// List returns every stored zone. A missing document reads as empty.
	List(ctx context.Context) ([]entity.AlertPoint, error)

	// Clear removes every stored zone.
	Clear(ctx context.Context) error
}
