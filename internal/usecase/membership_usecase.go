// Package usecase defines the application service contracts.
package usecase

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// MembershipUsecase tracks which zones the device is currently inside of and
// turns raw inside/outside classifications into edge transitions.
type MembershipUsecase interface {
	// Evaluate compares isInside against the persisted membership state and
	// returns the resulting transition. Storage failures are logged and
	// degrade to the safe default (reads as outside, writes best-effort);
	// the returned transition always reflects the decision made.
	Evaluate(ctx context.Context, alertPointID string, isInside bool) entity.Transition

	// List returns the zone IDs currently considered inside.
	List(ctx context.Context) ([]string, error)

	// Clear wipes the membership state so every zone reads as outside.
	// Clearing an already empty state succeeds as a no-op.
	Clear(ctx context.Context) error
}
