package kvrepo

import (
	"context"
	"sync"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/infra/persistence/kv"
)

type muteSettingsRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewMuteSettingsRepository creates the mute-settings repository.
func NewMuteSettingsRepository(store kv.Store) repository.MuteSettingsRepository {
	return &muteSettingsRepository{store: store}
}

func (r *muteSettingsRepository) Load(ctx context.Context) (*entity.MuteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, found, err := loadDocument[entity.MuteSettings](ctx, r.store, keyMuteSettings)
	if err != nil {
		return nil, err
	}
	if !found {
		return &entity.MuteSettings{}, nil
	}

	return &settings, nil
}

func (r *muteSettingsRepository) Save(ctx context.Context, settings *entity.MuteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return saveDocument(ctx, r.store, keyMuteSettings, *settings)
}
