package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/persistence/localstore"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.BucketURL = "mem://"
	cfg.Storage.Key = "test-state.json"

	return cfg
}

// createTestStore builds the real in-memory store over a mem:// bucket.
func createTestStore(t *testing.T) repository.Store {
	t.Helper()
	ctx := context.Background()

	snapshots, err := localstore.NewSnapshotStore(ctx, localstore.SnapshotParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    testConfig(),
	})
	require.NoError(t, err)

	store, err := localstore.New(ctx, testLogger(), snapshots)
	require.NoError(t, err)

	return store
}

func seedProperty(t *testing.T, properties usecase.PropertyUsecase, name string) *entity.Property {
	t.Helper()

	property, err := properties.CreateProperty(context.Background(), usecase.CreatePropertyInput{
		Name: name,
		Type: "house",
	})
	require.NoError(t, err)

	return property
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
