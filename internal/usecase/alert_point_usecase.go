package usecase

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// AlertPointUsecase manages the tracked zone set.
type AlertPointUsecase interface {
	// Sync fetches the remote zone set and replaces the stored one
	// wholesale, returning the number of imported zones.
	Sync(ctx context.Context) (int, error)

	// List returns the stored zone set.
	List(ctx context.Context) ([]entity.AlertPoint, error)

	// Clear removes every stored zone.
	Clear(ctx context.Context) error
}
