package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func TestSnapshotStore_LoadMissingKeyReturnsNil(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	snapshots := newSnapshotStore(bucket, "missing.json")
	snap, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotStore_LoadCorruptPayloadFails(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	require.NoError(t, bucket.WriteAll(ctx, "state.json", []byte("{not json"), nil))

	snapshots := newSnapshotStore(bucket, "state.json")
	_, err = snapshots.Load(ctx)
	assert.Error(t, err)
}

func TestStore_StateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	snapshots := newSnapshotStore(bucket, "state.json")

	first, err := New(ctx, testLogger(), snapshots)
	require.NoError(t, err)

	property, err := first.AddProperty(ctx, repository.CreateProperty{
		Name:    "Chata u lesa",
		Address: "Pod Smrkem 7",
		Type:    entity.PropertyTypeCottage,
	})
	require.NoError(t, err)

	event, err := first.AddMaintenanceEvent(ctx, repository.CreateMaintenanceEvent{
		PropertyID:      property.ID,
		Title:           "Kontrola komína",
		Category:        entity.CategoryHeating,
		Date:            time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		RecurringPeriod: entity.RecurringAnnually,
	})
	require.NoError(t, err)
	require.NoError(t, first.SelectProperty(ctx, &property.ID))

	// A fresh store over the same bucket sees the persisted state.
	second, err := New(ctx, testLogger(), snapshots)
	require.NoError(t, err)

	properties, err := second.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Chata u lesa", properties[0].Name)
	assert.Equal(t, entity.PropertyTypeCottage, properties[0].Type)

	reloaded, err := second.GetMaintenanceEvent(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	require.NotNil(t, reloaded.NextDueDate)
	assert.True(t, reloaded.NextDueDate.Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))

	selected, err := second.SelectedPropertyID(ctx)
	require.NoError(t, err)
	require.NotNil(t, selected)
	assert.Equal(t, property.ID, *selected)

	count, err := second.UnreadNotificationCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_EmptyBucketStartsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	properties, err := store.ListProperties(ctx)
	require.NoError(t, err)
	assert.Empty(t, properties)

	selected, err := store.SelectedPropertyID(ctx)
	require.NoError(t, err)
	assert.Nil(t, selected)

	missing, err := store.GetProperty(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
