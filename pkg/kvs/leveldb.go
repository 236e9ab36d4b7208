package kvs

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBStore is the "durable" area: an on-disk store that survives
// client restarts. Remembered sessions and the per-user feature cache
// live here. Values carry an 8-byte expiration header so TTLs work the
// same way as the other backends; a background sweep purges dead keys.
type LevelDBStore struct {
	db            *leveldb.DB
	mu            sync.RWMutex
	closed        bool
	sweepInterval time.Duration
	stopSweep     chan struct{}
	sweepDone     chan struct{}
}

// NewLevelDBStore opens (or creates) the LevelDB directory.
// A corrupted database is recovered rather than failing startup, since
// losing locally cached state is preferable to an unusable client.
func NewLevelDBStore(cfg LevelDBConfig) (*LevelDBStore, error) {
	path := cfg.Path
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		path = filepath.Join(cacheDir, "edu2job", "state")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kvs/leveldb: create directory: %w", err)
	}

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		if _, corrupted := err.(*ldberrors.ErrCorrupted); corrupted {
			db, err = leveldb.RecoverFile(path, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("kvs/leveldb: open %s: %w", path, err)
		}
	}

	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = 10 * time.Minute
	}

	store := &LevelDBStore{
		db:            db,
		sweepInterval: sweepInterval,
		stopSweep:     make(chan struct{}),
		sweepDone:     make(chan struct{}),
	}
	go store.sweepLoop()

	return store, nil
}

// encode prepends the expiration time as big-endian unix nanos.
// Zero means the key never expires.
func encode(value []byte, ttl time.Duration) []byte {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	out := make([]byte, 8+len(value))
	binary.BigEndian.PutUint64(out[:8], uint64(expiresAt))
	copy(out[8:], value)
	return out
}

// decode splits the expiration header from the payload.
func decode(raw []byte) (value []byte, expired bool, err error) {
	if len(raw) < 8 {
		return nil, false, fmt.Errorf("kvs/leveldb: value too short")
	}
	expiresAt := int64(binary.BigEndian.Uint64(raw[:8]))
	if expiresAt > 0 && time.Now().UnixNano() > expiresAt {
		return nil, true, nil
	}
	return raw[8:], false, nil
}

func (l *LevelDBStore) isClosed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.closed
}

// Get retrieves a value by key.
func (l *LevelDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	if l.isClosed() {
		return nil, ErrClosed
	}

	raw, err := l.db.Get([]byte(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kvs/leveldb: get: %w", err)
	}

	value, expired, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if expired {
		_ = l.db.Delete([]byte(key), nil)
		return nil, ErrNotFound
	}
	return value, nil
}

// Set stores a value with optional TTL.
func (l *LevelDBStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if l.isClosed() {
		return ErrClosed
	}

	if err := l.db.Put([]byte(key), encode(value, ttl), nil); err != nil {
		return fmt.Errorf("kvs/leveldb: set: %w", err)
	}
	return nil
}

// Delete removes a key.
func (l *LevelDBStore) Delete(ctx context.Context, key string) error {
	if l.isClosed() {
		return ErrClosed
	}

	if err := l.db.Delete([]byte(key), nil); err != nil && err != leveldb.ErrNotFound {
		return fmt.Errorf("kvs/leveldb: delete: %w", err)
	}
	return nil
}

// Exists reports whether a key exists and has not expired.
func (l *LevelDBStore) Exists(ctx context.Context, key string) (bool, error) {
	if l.isClosed() {
		return false, ErrClosed
	}

	raw, err := l.db.Get([]byte(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("kvs/leveldb: exists: %w", err)
	}

	_, expired, err := decode(raw)
	if err != nil {
		return false, err
	}
	return !expired, nil
}

// List returns all live keys matching a prefix.
func (l *LevelDBStore) List(ctx context.Context, prefix string) ([]string, error) {
	if l.isClosed() {
		return nil, ErrClosed
	}

	iter := l.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	var keys []string
	for iter.Next() {
		_, expired, err := decode(iter.Value())
		if err != nil || expired {
			continue
		}
		keys = append(keys, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("kvs/leveldb: list: %w", err)
	}
	return keys, nil
}

// Close stops the sweep goroutine and closes the database.
func (l *LevelDBStore) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.closed = true
	l.mu.Unlock()

	close(l.stopSweep)
	<-l.sweepDone

	if err := l.db.Close(); err != nil {
		return fmt.Errorf("kvs/leveldb: close: %w", err)
	}
	return nil
}

func (l *LevelDBStore) sweepLoop() {
	defer close(l.sweepDone)

	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stopSweep:
			return
		}
	}
}

// sweep batch-deletes expired keys.
func (l *LevelDBStore) sweep() {
	if l.isClosed() {
		return
	}

	iter := l.db.NewIterator(nil, nil)
	defer iter.Release()

	now := time.Now().UnixNano()
	batch := new(leveldb.Batch)
	for iter.Next() {
		raw := iter.Value()
		if len(raw) < 8 {
			continue
		}
		expiresAt := int64(binary.BigEndian.Uint64(raw[:8]))
		if expiresAt > 0 && now > expiresAt {
			batch.Delete(append([]byte(nil), iter.Key()...))
		}
	}
	if batch.Len() > 0 {
		_ = l.db.Write(batch, nil)
	}
}
