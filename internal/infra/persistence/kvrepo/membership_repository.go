package kvrepo

import (
	"context"
	"slices"
	"sync"

	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"
)

type membershipRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewMembershipRepository creates the zone-membership repository.
func NewMembershipRepository(store kv.Store) repository.MembershipRepository {
	return &membershipRepository{store: store}
}

func (r *membershipRepository) Contains(ctx context.Context, alertPointID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, _, err := loadDocument[[]string](ctx, r.store, keyMembership)
	if err != nil {
		return false, err
	}

	return slices.Contains(ids, alertPointID), nil
}

func (r *membershipRepository) Add(ctx context.Context, alertPointID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, _, err := loadDocument[[]string](ctx, r.store, keyMembership)
	if err != nil {
		return err
	}
	if slices.Contains(ids, alertPointID) {
		return nil
	}

	return saveDocument(ctx, r.store, keyMembership, append(ids, alertPointID))
}

func (r *membershipRepository) Remove(ctx context.Context, alertPointID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, found, err := loadDocument[[]string](ctx, r.store, keyMembership)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	ids = slices.DeleteFunc(ids, func(id string) bool { return id == alertPointID })

	return saveDocument(ctx, r.store, keyMembership, ids)
}

func (r *membershipRepository) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, _, err := loadDocument[[]string](ctx, r.store, keyMembership)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *membershipRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, keyMembership)
}
