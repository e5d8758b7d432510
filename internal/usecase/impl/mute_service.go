package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/usecase"

	"github.com/pkg/errors"
)

type muteService struct {
	repo   repository.MuteSettingsRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewMuteService creates the mute policy service.
func NewMuteService(repo repository.MuteSettingsRepository, logger *slog.Logger) usecase.MuteUsecase {
	return &muteService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// IsSuppressed resolves the mute layers in order: permanent, timed, per-alert.
// An elapsed timed mute is cleared lazily here; there is no expiry timer.
func (s *muteService) IsSuppressed(ctx context.Context, alertPointID string) (bool, usecase.SuppressReason) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		// Fail open: notifications are not suppressed when the settings
		// cannot be read.
		s.logger.Warn("mute settings unreadable, failing open", slog.Any("error", err))

		return false, usecase.SuppressNone
	}

	if settings.IsMuted {
		return true, usecase.SuppressPermanent
	}

	if settings.MutedUntil != nil {
		if s.now().Before(*settings.MutedUntil) {
			return true, usecase.SuppressTimed
		}

		s.clearExpired(ctx, settings)
	}

	if settings.IsAlertMuted(alertPointID) {
		return true, usecase.SuppressPerAlert
	}

	return false, usecase.SuppressNone
}

func (s *muteService) SetMuted(ctx context.Context, muted bool) error {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load mute settings")
	}

	settings.SetMuted(muted)

	return errors.Wrap(s.repo.Save(ctx, settings), "save mute settings")
}

func (s *muteService) MuteFor(ctx context.Context, d time.Duration) error {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load mute settings")
	}

	settings.SetMutedUntil(s.now().Add(d))

	return errors.Wrap(s.repo.Save(ctx, settings), "save mute settings")
}

func (s *muteService) SetAlertMuted(ctx context.Context, alertPointID string, muted bool) error {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load mute settings")
	}

	settings.SetAlertMuted(alertPointID, muted)

	return errors.Wrap(s.repo.Save(ctx, settings), "save mute settings")
}

func (s *muteService) MinutesRemaining(ctx context.Context) (*int, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load mute settings")
	}

	if settings.MutedUntil == nil {
		return nil, nil
	}

	remaining := settings.MutedUntil.Sub(s.now())
	if remaining <= 0 {
		s.clearExpired(ctx, settings)

		return nil, nil
	}

	minutes := int(math.Ceil(remaining.Minutes()))

	return &minutes, nil
}

func (s *muteService) Settings(ctx context.Context) (*entity.MuteSettings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load mute settings")
	}

	return settings, nil
}

// clearExpired materializes the lazy expiry of a timed mute.
func (s *muteService) clearExpired(ctx context.Context, settings *entity.MuteSettings) {
	settings.MutedUntil = nil
	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("failed to clear expired timed mute", slog.Any("error", err))
	}
}
