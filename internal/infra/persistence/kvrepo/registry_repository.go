package kvrepo

import (
	"context"
	"slices"
	"sync"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"
)

type registryRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewRegistryRepository creates the active-notification registry repository.
func NewRegistryRepository(store kv.Store) repository.RegistryRepository {
	return &registryRepository{store: store}
}

func (r *registryRepository) Register(ctx context.Context, notification entity.ActiveNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := loadDocument[[]entity.ActiveNotification](ctx, r.store, keyRegistry)
	if err != nil {
		return err
	}

	return saveDocument(ctx, r.store, keyRegistry, append(records, notification))
}

func (r *registryRepository) Find(ctx context.Context, alertPointID string) (*entity.ActiveNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := loadDocument[[]entity.ActiveNotification](ctx, r.store, keyRegistry)
	if err != nil {
		return nil, err
	}

	// Duplicate entries are possible across races; first match wins.
	for i := range records {
		if records[i].AlertPointID == alertPointID {
			return &records[i], nil
		}
	}

	return nil, repository.ErrNotificationNotRegistered
}

func (r *registryRepository) Remove(ctx context.Context, alertPointID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, found, err := loadDocument[[]entity.ActiveNotification](ctx, r.store, keyRegistry)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	records = slices.DeleteFunc(records, func(n entity.ActiveNotification) bool {
		return n.AlertPointID == alertPointID
	})

	return saveDocument(ctx, r.store, keyRegistry, records)
}

func (r *registryRepository) List(ctx context.Context) ([]entity.ActiveNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := loadDocument[[]entity.ActiveNotification](ctx, r.store, keyRegistry)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *registryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, keyRegistry)
}
