// Package cache implements the node-local entitlement fallback store as a
// JSON file. It is consulted only when both the backend record and the billing
// subsystem are unavailable.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"diary/config"
	"diary/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fileEntitlementCache keeps the last known entitlement per user in memory and
// mirrors it to a JSON file so the fallback survives restarts. Without a
// configured path the cache is memory-only.
type fileEntitlementCache struct {
	mu      sync.RWMutex
	entries map[string]bool
	path    string
	logger  *slog.Logger
}

// CacheParams holds dependencies for the entitlement cache, injected by Fx.
type CacheParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEntitlementCache creates the entitlement cache, loading any previously
// persisted state from disk. A corrupt or missing file starts the cache empty.
func NewEntitlementCache(params CacheParams) (service.EntitlementCache, error) {
	var path string
	if params.Config.EntitlementCache != nil {
		path = params.Config.EntitlementCache.Path
	}

	c := &fileEntitlementCache{
		entries: make(map[string]bool),
		path:    path,
		logger:  params.Logger,
	}

	if path == "" {
		params.Logger.Info("Entitlement cache running memory-only, no path configured")

		return c, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run on this node.
	case err != nil:
		return nil, errors.Wrap(err, "failed to read entitlement cache file")
	default:
		if err := json.Unmarshal(data, &c.entries); err != nil {
			params.Logger.Warn("Entitlement cache file is corrupt, starting empty",
				slog.String("path", path),
				slog.Any("error", err),
			)
			c.entries = make(map[string]bool)
		}
	}

	return c, nil
}

// Get returns the cached entitlement and whether a value exists for the user.
func (c *fileEntitlementCache) Get(_ context.Context, userID uuid.UUID) (bool, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	subscribed, ok := c.entries[userID.String()]

	return subscribed, ok, nil
}

// Set stores the entitlement for the user, replacing any previous value, and
// rewrites the backing file.
func (c *fileEntitlementCache) Set(_ context.Context, userID uuid.UUID, subscribed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[userID.String()] = subscribed

	return c.persistLocked()
}

// persistLocked writes the cache to disk via a temp file and rename, so a
// crash mid-write never leaves a truncated cache behind. Caller holds the lock.
func (c *fileEntitlementCache) persistLocked() error {
	if c.path == "" {
		return nil
	}

	data, err := json.Marshal(c.entries)
	if err != nil {
		return errors.Wrap(err, "failed to encode entitlement cache")
	}

	tmp := c.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create entitlement cache directory")
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write entitlement cache file")
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return errors.Wrap(err, "failed to replace entitlement cache file")
	}

	return nil
}

// Module provides the entitlement cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEntitlementCache),
)
