package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"diary/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, path string) *fileEntitlementCache {
	t.Helper()

	cfg := &config.Config{}
	if path != "" {
		cfg.EntitlementCache = &config.EntitlementCacheConfig{Path: path}
	}

	cache, err := NewEntitlementCache(CacheParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	fc, ok := cache.(*fileEntitlementCache)
	require.True(t, ok)

	return fc
}

func TestEntitlementCache_GetMissReturnsNotOK(t *testing.T) {
	cache := newTestCache(t, "")
	ctx := context.Background()

	subscribed, ok, err := cache.Get(ctx, uuid.New())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, subscribed)
}

func TestEntitlementCache_SetThenGet(t *testing.T) {
	cache := newTestCache(t, "")
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Set(ctx, userID, true))

	subscribed, ok, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, subscribed)

	// The latest write wins.
	require.NoError(t, cache.Set(ctx, userID, false))

	subscribed, ok, err = cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, subscribed)
}

func TestEntitlementCache_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entitlements.json")
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	first := newTestCache(t, path)
	require.NoError(t, first.Set(ctx, userID, true))
	require.NoError(t, first.Set(ctx, otherID, false))

	// A new instance reads the persisted state.
	second := newTestCache(t, path)

	subscribed, ok, err := second.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, subscribed)

	subscribed, ok, err = second.Get(ctx, otherID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, subscribed)
}

func TestEntitlementCache_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entitlements.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cache := newTestCache(t, path)

	_, ok, err := cache.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
