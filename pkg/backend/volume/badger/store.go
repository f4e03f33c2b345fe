// Package badger implements a persistent volume.Store on BadgerDB.
package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/google/uuid"

	"github.com/marmos91/posixshim/pkg/backend/volume"
	"github.com/marmos91/posixshim/pkg/metrics"
)

var (
	_ volume.Store   = (*Store)(nil)
	_ volume.Counter = (*Store)(nil)
)

// Store implements volume.Store using BadgerDB for persistence.
//
// It is suitable for:
//   - Emulated volumes that must survive restarts
//   - Large seeded trees that should not be rebuilt on every run
//
// Thread Safety:
// BadgerDB transactions are safe for concurrent use, so the store holds no
// lock of its own.
//
// Storage Model:
// Entries live under namespaced keys (see keys.go) and are XDR encoded (see
// serialization.go). The volume serial is derived from a UUID generated on
// first open and persisted alongside the entries, so it is stable across
// restarts.
type Store struct {
	// db is the BadgerDB database handle
	db *badger.DB

	// serial is the volume serial number, read once at open time
	serial uint32

	metrics metrics.BackendMetrics
}

// Config contains configuration for opening a BadgerDB volume store.
type Config struct {
	// DBPath is the directory where BadgerDB will store its files.
	DBPath string `mapstructure:"db_path" validate:"required"`

	// InMemory runs BadgerDB without touching disk. DBPath is ignored.
	InMemory bool `mapstructure:"in_memory"`

	// BlockCacheSizeMB is BadgerDB's block cache size in MB (default: 32)
	BlockCacheSizeMB int64 `mapstructure:"block_cache_size_mb"`

	// IndexCacheSizeMB is BadgerDB's index cache size in MB (default: 16)
	IndexCacheSizeMB int64 `mapstructure:"index_cache_size_mb"`
}

// New opens (or creates) a BadgerDB volume store.
//
// Parameters:
//   - ctx: Context for cancellation during initialization
//   - config: Database location and cache sizes
//   - m: Metrics sink; nil disables metrics
//
// Returns:
//   - *Store: A store ready for use
//   - error: Error if the database cannot be opened or initialized
func New(ctx context.Context, config Config, m metrics.BackendMetrics) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.NoopBackendMetrics()
	}

	opts := badger.DefaultOptions(config.DBPath)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}

	// Entries are small and read far more often than written.
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithCompression(options.None)

	blockCacheMB := config.BlockCacheSizeMB
	if blockCacheMB == 0 {
		blockCacheMB = 32
	}
	indexCacheMB := config.IndexCacheSizeMB
	if indexCacheMB == 0 {
		indexCacheMB = 16
	}
	opts = opts.WithBlockCacheSize(blockCacheMB << 20)
	opts = opts.WithIndexCacheSize(indexCacheMB << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB at %s: %w", config.DBPath, err)
	}

	s := &Store{db: db, metrics: m}
	if err := s.initializeVolumeID(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize volume id: %w", err)
	}
	return s, nil
}

// initializeVolumeID loads the persisted volume UUID, generating it on first
// open.
func (s *Store) initializeVolumeID() error {
	return s.db.Update(func(txn *badger.Txn) error {
		var id uuid.UUID

		item, err := txn.Get([]byte(keyVolumeID))
		switch {
		case err == nil:
			if err := item.Value(func(val []byte) error {
				id, err = uuid.FromBytes(val)
				return err
			}); err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			id = uuid.New()
			b, _ := id.MarshalBinary()
			if err := txn.Set([]byte(keyVolumeID), b); err != nil {
				return err
			}
		default:
			return err
		}

		s.serial = id.ID()
		return nil
	})
}

func (s *Store) GetEntry(ctx context.Context, key string) (*volume.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var e *volume.Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			e, err = decodeEntry(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		s.metrics.RecordStorageOperation("get", time.Since(start), nil)
		return nil, volume.ErrNotFound
	}
	s.metrics.RecordStorageOperation("get", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", key, err)
	}
	return e, nil
}

func (s *Store) PutEntry(ctx context.Context, key string, e *volume.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeEntry(e)
	if err != nil {
		return err
	}

	start := time.Now()
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(key), data)
	})
	s.metrics.RecordStorageOperation("put", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to put entry %s: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(entryKey(key))
	})
	s.metrics.RecordStorageOperation("delete", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", key, err)
	}
	return nil
}

func (s *Store) Serial(ctx context.Context) (uint32, error) {
	return s.serial, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixEntry)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

// Close releases the database. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}
