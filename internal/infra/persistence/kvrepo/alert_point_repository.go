package kvrepo

import (
	"context"
	"sync"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"
)

type alertPointRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewAlertPointRepository creates the alert-point repository.
func NewAlertPointRepository(store kv.Store) repository.AlertPointRepository {
	return &alertPointRepository{store: store}
}

func (r *alertPointRepository) ReplaceAll(ctx context.Context, points []entity.AlertPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return saveDocument(ctx, r.store, keyAlertPoints, points)
}

func (r *alertPointRepository) List(ctx context.Context) ([]entity.AlertPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points, _, err := loadDocument[[]entity.AlertPoint](ctx, r.store, keyAlertPoints)
	if err != nil {
		return nil, err
	}

	return points, nil
}

func (r *alertPointRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, keyAlertPoints)
}
