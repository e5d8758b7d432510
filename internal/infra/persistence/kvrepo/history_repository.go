package kvrepo

import (
	"context"
	"slices"
	"sync"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"

	"github.com/google/uuid"
)

type historyRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewHistoryRepository creates the notification-history repository.
func NewHistoryRepository(store kv.Store) repository.HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) Append(ctx context.Context, item entity.HistoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, _, err := loadDocument[[]entity.HistoryItem](ctx, r.store, keyHistory)
	if err != nil {
		return err
	}

	// Newest first.
	items = append([]entity.HistoryItem{item}, items...)

	return saveDocument(ctx, r.store, keyHistory, items)
}

func (r *historyRepository) List(ctx context.Context) ([]entity.HistoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, _, err := loadDocument[[]entity.HistoryItem](ctx, r.store, keyHistory)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *historyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, found, err := loadDocument[[]entity.HistoryItem](ctx, r.store, keyHistory)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	items = slices.DeleteFunc(items, func(item entity.HistoryItem) bool {
		return item.ID == id
	})

	return saveDocument(ctx, r.store, keyHistory, items)
}

func (r *historyRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, keyHistory)
}
