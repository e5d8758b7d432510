package repository

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// MuteSettingsRepository persists the notification suppression settings as a
// single document.
type MuteSettingsRepository interface {
	// Load returns the stored settings, or zero-value settings when none
	// have been saved yet.
	Load(ctx context.Context) (*entity.MuteSettings, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, settings *entity.MuteSettings) error
}
