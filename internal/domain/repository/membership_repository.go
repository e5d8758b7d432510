package repository

import "context"

// MembershipRepository persists the set of zone IDs the device currently
// considers itself inside of. Absence of an ID means outside.
type MembershipRepository interface {
	// Contains reports whether the zone is in the inside-set.
	Contains(ctx context.Context, alertPointID string) (bool, error)

	// Add records the zone as inside.
	Add(ctx context.Context, alertPointID string) error

	// Remove records the zone as outside.
	Remove(ctx context.Context, alertPointID string) error

	// List returns every inside zone ID.
	List(ctx context.Context) ([]string, error)

	// Clear wipes the whole inside-set. Clearing an empty set is a no-op.
	Clear(ctx context.Context) error
}
