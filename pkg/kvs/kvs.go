// Package kvs provides the key-value storage areas backing the Edu2Job
// client: an in-memory area that lives only as long as the process, a
// LevelDB area that survives restarts, and an optional Redis area for
// setups that share client state across machines.
package kvs

import (
	"context"
	"errors"
	"time"
)

// Store is a key-value store with optional per-key TTL.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A ttl of 0 means the key never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key exists and has not expired.
	Exists(ctx context.Context, key string) (bool, error)

	// List returns all keys matching a prefix, order unspecified.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close releases resources. Operations after Close return ErrClosed.
	Close() error
}

var (
	// ErrNotFound is returned when a key is missing or expired.
	ErrNotFound = errors.New("kvs: key not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("kvs: store is closed")
)

// Config selects and configures a storage backend.
type Config struct {
	// Type is "memory", "leveldb", or "redis". Empty means memory.
	Type string `yaml:"type"`

	LevelDB LevelDBConfig `yaml:"leveldb"`
	Redis   RedisConfig   `yaml:"redis"`
}

// LevelDBConfig configures the on-disk store.
type LevelDBConfig struct {
	// Path is the LevelDB directory. Empty resolves to an edu2job
	// directory under the OS user cache dir.
	Path string `yaml:"path"`

	// SweepInterval is how often expired keys are purged. Default: 10 minutes.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// New creates a store for the given config.
func New(cfg Config) (Store, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryStore(), nil
	case "leveldb":
		return NewLevelDBStore(cfg.LevelDB)
	case "redis":
		return NewRedisStore(cfg.Redis)
	default:
		return nil, errors.New("kvs: unsupported store type: " + cfg.Type)
	}
}
