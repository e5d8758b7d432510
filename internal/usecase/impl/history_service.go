package impl

import (
	"context"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type historyService struct {
	repo repository.HistoryRepository
}

// NewHistoryService creates the notification-history service.
func NewHistoryService(repo repository.HistoryRepository) usecase.HistoryUsecase {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context) ([]entity.HistoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list notification history")
	}

	return items, nil
}

func (s *historyService) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete notification history item")
}

func (s *historyService) Clear(ctx context.Context) error {
	return errors.Wrap(s.repo.Clear(ctx), "clear notification history")
}
