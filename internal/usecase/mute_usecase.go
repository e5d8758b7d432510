package usecase

import (
	"context"
	"time"

	"zonewatch/internal/domain/entity"
)

// SuppressReason names the mute layer that suppressed a notification.
type SuppressReason string

const (
	SuppressNone      SuppressReason = ""
	SuppressPermanent SuppressReason = "permanent"
	SuppressTimed     SuppressReason = "timed"
	SuppressPerAlert  SuppressReason = "per-alert"
)

// MuteUsecase resolves and mutates the layered notification mute policy.
type MuteUsecase interface {
	// IsSuppressed reports whether notifications for the zone are currently
	// suppressed and by which layer. An expired timed mute is cleared as a
	// side effect of the check. Unreadable settings fail open (not muted).
	IsSuppressed(ctx context.Context, alertPointID string) (bool, SuppressReason)

	// SetMuted toggles the permanent mute; enabling it clears a timed mute.
	SetMuted(ctx context.Context, muted bool) error

	// MuteFor arms a timed mute ending after d; clears the permanent mute.
	MuteFor(ctx context.Context, d time.Duration) error

	// SetAlertMuted toggles the per-zone mute for one alert point.
	SetAlertMuted(ctx context.Context, alertPointID string, muted bool) error

	// MinutesRemaining returns the remaining timed-mute minutes rounded up,
	// or nil when no timed mute is active. An elapsed mute is cleared and
	// reads as nil.
	MinutesRemaining(ctx context.Context) (*int, error)

	// Settings returns the current mute settings.
	Settings(ctx context.Context) (*entity.MuteSettings, error)
}
