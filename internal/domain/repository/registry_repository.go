package repository

import (
	"context"

	"zonewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotificationNotRegistered is returned when no active notification exists
// for the requested zone.
var ErrNotificationNotRegistered = errors.New("no active notification registered for alert point")

// RegistryRepository persists the active-notification records, keyed by zone.
// Register appends; duplicate zone entries are tolerated and Find returns the
// first match.
type RegistryRepository interface {
	// Register appends a delivered-notification record.
	Register(ctx context.Context, notification entity.ActiveNotification) error

	// Find returns the first record for the zone, or ErrNotificationNotRegistered.
	Find(ctx context.Context, alertPointID string) (*entity.ActiveNotification, error)

	// Remove drops every record for the zone.
	Remove(ctx context.Context, alertPointID string) error

	// List returns every record.
	List(ctx context.Context) ([]entity.ActiveNotification, error)

	// Clear wipes the registry.
	Clear(ctx context.Context) error
}
