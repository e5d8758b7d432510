// Package kvrepo implements the domain repositories on top of the key-value
// store. Each repository owns one document and serializes its
// read-modify-write cycles with a mutex so concurrent zone evaluations cannot
// lose updates.
package kvrepo

import (
	"context"
	"encoding/json"

	"zonewatch/internal/infra/persistence/kv"

	"github.com/pkg/errors"
)

// Persisted document keys.
const (
	keyAlertPoints  = "zonewatch:alert_points"
	keyMembership   = "zonewatch:membership"
	keyMuteSettings = "zonewatch:mute_settings"
	keyRegistry     = "zonewatch:registry"
	keyHistory      = "zonewatch:history"
	keyDeviceID     = "zonewatch:device_id"
)

const schemaVersion = 1

// document is the envelope every persisted blob is wrapped in. The version
// field exists for forward compatibility of the on-disk format.
type document[T any] struct {
	Version int `json:"version"`
	Data    T   `json:"data"`
}

// loadDocument reads and decodes the document at key. A missing key returns
// ok=false with the zero value and no error.
func loadDocument[T any](ctx context.Context, store kv.Store, key string) (data T, ok bool, err error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return data, false, nil
	}
	if err != nil {
		return data, false, err
	}

	var doc document[T]
	if err := json.Unmarshal(raw, &doc); err != nil {
		return data, false, errors.Wrapf(err, "decode document %q", key)
	}

	return doc.Data, true, nil
}

// saveDocument encodes and writes the document at key.
func saveDocument[T any](ctx context.Context, store kv.Store, key string, data T) error {
	raw, err := json.Marshal(document[T]{Version: schemaVersion, Data: data})
	if err != nil {
		return errors.Wrapf(err, "encode document %q", key)
	}

	return store.Set(ctx, key, raw)
}
