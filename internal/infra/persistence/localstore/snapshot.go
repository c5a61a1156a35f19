package localstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for durable local storage
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

// snapshot is the single serialized record holding the entire store state.
// Dates round-trip through the default RFC 3339 encoding of time.Time.
type snapshot struct {
	Properties         []entity.Property         `json:"properties"`
	MaintenanceEvents  []entity.MaintenanceEvent `json:"maintenanceEvents"`
	Notifications      []entity.Notification     `json:"notifications"`
	SelectedPropertyID *uuid.UUID                `json:"selectedPropertyId"`
}

// SnapshotStore persists the full store state as one document under a single
// named key in a blob bucket. The production bucket is a file:// URL, standing
// in for the browser's per-profile local storage; tests use mem://.
type SnapshotStore struct {
	bucket *blob.Bucket
	key    string
}

// SnapshotParams defines the parameters required for the snapshot store.
type SnapshotParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewSnapshotStore opens the configured bucket and returns the snapshot store.
// The bucket handle is released on shutdown through the fx lifecycle.
func NewSnapshotStore(ctx context.Context, params SnapshotParams) (*SnapshotStore, error) {
	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage bucket %q", params.Config.Storage.BucketURL)
	}

	key := params.Config.Storage.Key
	if key == "" {
		key = config.DefaultStorageKey
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &SnapshotStore{bucket: bucket, key: key}, nil
}

// newSnapshotStore wires a snapshot store to an already open bucket.
func newSnapshotStore(bucket *blob.Bucket, key string) *SnapshotStore {
	return &SnapshotStore{bucket: bucket, key: key}
}

// Save serializes the snapshot and writes it under the configured key.
func (s *SnapshotStore) Save(ctx context.Context, snap *snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "failed to serialize state snapshot")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.bucket.WriteAll(writeCtx, s.key, payload, nil); err != nil {
		return errors.Wrap(err, "failed to write state snapshot")
	}

	return nil
}

// Load reads and decodes the snapshot under the configured key. A missing key
// yields a nil snapshot with a nil error; a corrupt document is an error so the
// caller can decide to start empty.
func (s *SnapshotStore) Load(ctx context.Context) (*snapshot, error) {
	payload, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read state snapshot")
	}

	snap := new(snapshot)
	if err := json.Unmarshal(payload, snap); err != nil {
		return nil, errors.Wrap(err, "failed to decode state snapshot")
	}

	return snap, nil
}
