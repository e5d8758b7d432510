package kvrepo

import (
	"context"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/infra/persistence/kv"

	"github.com/google/uuid"
)

// EnsureDeviceID returns the persisted installation ID, generating and
// storing one on first run.
func EnsureDeviceID(ctx context.Context, store kv.Store) (entity.DeviceID, error) {
	id, found, err := loadDocument[string](ctx, store, keyDeviceID)
	if err != nil {
		return "", err
	}
	if found && id != "" {
		return entity.DeviceID(id), nil
	}

	id = uuid.NewString()
	if err := saveDocument(ctx, store, keyDeviceID, id); err != nil {
		return "", err
	}

	return entity.DeviceID(id), nil
}
