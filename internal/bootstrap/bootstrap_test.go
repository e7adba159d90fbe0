package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/config"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/pack"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		PoolsDir:          filepath.Join(dir, "pools"),
		DatasetPath:       filepath.Join(dir, "dataset"),
		ProgressionConfig: filepath.Join(dir, "missing.json"),
		BinderStore:       config.StoreFile,
		BinderFile:        filepath.Join(dir, "data", "binder_state.json"),
		SQLitePath:        filepath.Join(dir, "data", "binder.db"),
		LogLevel:          "info",
		LogFormat:         "text",
		Environment:       "test",
		ServiceName:       "booster-pack",
		Version:           "test",
		MetadataCacheSize: 16,
		MetadataCacheTTL:  time.Minute,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644))

	cleanupLogs(dir, 8)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 8)
	assert.Equal(t, "session_2026-01-05_00-00-00.log", logs[0], "oldest sessions removed first")
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	var stdout bytes.Buffer
	closer, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)

	slog.Info("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, "session_2026-03-04_05-06-07.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, stdout.String(), "hello from test")
	assert.Contains(t, stdout.String(), "service=booster-pack")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	cfg.AllowedOrigins = []string{"*"}

	var stdout bytes.Buffer
	closer, err := setupLogger(cfg, &stdout, time.Now())
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.Contains(t, stdout.String(), LogMsgConfigWarning)
}

func TestOpenBinderStore(t *testing.T) {
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		cfg := testConfig(t)
		store, err := OpenBinderStore(ctx, cfg)
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, config.StoreFile, store.Name)
		assert.Nil(t, store.Health)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.BinderStore = config.StoreSQLite
		store, err := OpenBinderStore(ctx, cfg)
		require.NoError(t, err)

		assert.Equal(t, config.StoreSQLite, store.Name)
		require.NotNil(t, store.Health)
		assert.NoError(t, store.Health.CheckHealth(ctx))

		require.NoError(t, store.Repo.Save(ctx, domain.NewBinderState()))
		doc, err := store.Repo.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, doc)

		require.NoError(t, store.Close())
		assert.Error(t, store.Health.CheckHealth(ctx), "closed database no longer answers")
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.BinderStore = "redis"
		_, err := OpenBinderStore(ctx, cfg)
		assert.ErrorContains(t, err, ErrMsgUnknownBinderStore)
	})
}

func TestBinderStore_CloseNil(t *testing.T) {
	var store *BinderStore
	assert.NoError(t, store.Close())
}

func writeTestPool(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := `{"set_id":"base2","pools":{"common":["c1","c2","c3","c4","c5","c6","c7"],"uncommon":["u1","u2","u3"],"rare":["r1"],"holo":["h1"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base2.json"), []byte(body), 0o644))
}

func TestBuildServices(t *testing.T) {
	restoreDefaultLogger(t)
	ctx := context.Background()
	cfg := testConfig(t)
	writeTestPool(t, cfg.PoolsDir)

	store, err := OpenBinderStore(ctx, cfg)
	require.NoError(t, err)

	svc, err := BuildServices(ctx, cfg, store)
	require.NoError(t, err)
	defer GracefulShutdown(ctx, ShutdownComponents{Events: svc.Events, Store: store})

	assert.Equal(t, []string{"base2"}, svc.Binder.UnlockedSets(ctx))
	assert.Nil(t, svc.Readiness)

	seed := int64(7)
	res, err := svc.Pack.OpenPack(ctx, pack.OpenRequest{SetID: "base2", Seed: &seed})
	require.NoError(t, err)
	assert.Len(t, res.Slots, domain.PackSize)
	assert.Equal(t, domain.PackSize, res.Summary.NewCards)

	sets, err := svc.Sets.SetCatalog("base2")
	require.NoError(t, err)
	assert.Equal(t, "base2", sets.SetID)
}

func TestBuildServices_MissingPools(t *testing.T) {
	restoreDefaultLogger(t)
	ctx := context.Background()
	cfg := testConfig(t)

	store, err := OpenBinderStore(ctx, cfg)
	require.NoError(t, err)

	_, err = BuildServices(ctx, cfg, store)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogDirNotFound)
}
