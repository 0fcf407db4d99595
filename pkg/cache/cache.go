// Package cache stores generated mazes and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a local directory, used by
//     the CLI (default ~/.cache/mazewalk)
//   - [RedisCache]: a shared Redis instance, used when several server
//     processes should reuse each other's work
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
// A [Keyer] derives deterministic keys from everything that influences an
// entry, so a changed option can never return a stale artifact:
//
//	k := cache.NewDefaultKeyer()
//	mazeKey := k.MazeKey(cache.MazeKeyOpts{Rows: 40, Cols: 80, Algorithm: "wilson", Seed: 7})
//	artKey := k.ArtifactKey(mazeHash, cache.ArtifactKeyOpts{Strategy: "bfs", Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Entry lifetimes.
const (
	// TTLMaze is how long a generated maze is kept. Mazes are a pure
	// function of their options, so the limit only bounds disk use.
	TTLMaze = 7 * 24 * time.Hour

	// TTLArtifact is how long a rendered artifact is kept.
	TTLArtifact = 24 * time.Hour
)
