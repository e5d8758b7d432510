package usecase

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// TrackerStatus is a read-only snapshot of the tracking state.
type TrackerStatus struct {
	InsideZoneIDs       []string             `json:"inside_zone_ids"`
	ActiveNotifications int                  `json:"active_notifications"`
	Mute                *entity.MuteSettings `json:"mute"`
}

// TrackerUsecase is the notification dispatch controller: it consumes
// location samples and drives notification delivery and dismissal per zone.
type TrackerUsecase interface {
	// OnLocationSample evaluates one sample against every alert point.
	// Failures in one zone's processing never abort the others; they are
	// logged and swallowed, so the returned error is reserved for the
	// inability to evaluate anything at all.
	OnLocationSample(ctx context.Context, sample entity.Sample) error

	// Run consumes the location source until ctx is canceled or the source
	// closes, processing samples strictly in arrival order.
	Run(ctx context.Context) error

	// Reset dismisses every registered notification and clears membership,
	// returning the tracker to the documented cold-start state.
	Reset(ctx context.Context) error

	// Status reports the current membership, registry and mute state.
	Status(ctx context.Context) (*TrackerStatus, error)
}
