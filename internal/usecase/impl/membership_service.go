package impl

import (
	"context"
	"log/slog"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/usecase"

	"github.com/pkg/errors"
)

type membershipService struct {
	repo   repository.MembershipRepository
	logger *slog.Logger
}

// NewMembershipService creates the zone membership tracker.
func NewMembershipService(repo repository.MembershipRepository, logger *slog.Logger) usecase.MembershipUsecase {
	return &membershipService{
		repo:   repo,
		logger: logger,
	}
}

// Evaluate detects inside/outside edges against the persisted membership set.
// A zone can never produce two consecutive entered transitions without an
// exited (or a clear) in between, which is what bounds notifications to one
// per entry episode.
func (s *membershipService) Evaluate(ctx context.Context, alertPointID string, isInside bool) entity.Transition {
	wasInside, err := s.repo.Contains(ctx, alertPointID)
	if err != nil {
		// Unreadable membership reads as empty, i.e. outside everything.
		s.logger.Warn("membership state unreadable, assuming outside",
			slog.String("alertPointID", alertPointID),
			slog.Any("error", err))
		wasInside = false
	}

	switch {
	case isInside && !wasInside:
		if err := s.repo.Add(ctx, alertPointID); err != nil {
			// The transition already happened; a failed write only risks a
			// repeat notification on the next sample.
			s.logger.Error("failed to persist zone entry",
				slog.String("alertPointID", alertPointID),
				slog.Any("error", err))
		}

		return entity.TransitionEntered
	case !isInside && wasInside:
		if err := s.repo.Remove(ctx, alertPointID); err != nil {
			s.logger.Error("failed to persist zone exit",
				slog.String("alertPointID", alertPointID),
				slog.Any("error", err))
		}

		return entity.TransitionExited
	default:
		return entity.TransitionNone
	}
}

func (s *membershipService) List(ctx context.Context) ([]string, error) {
	ids, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list zone membership")
	}

	return ids, nil
}

func (s *membershipService) Clear(ctx context.Context) error {
	return errors.Wrap(s.repo.Clear(ctx), "clear zone membership")
}
