package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachedRun format changes
const resultCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// ResultCache хранит результаты успешных запусков на диске, ключ — хэш
// содержимого файла и параметров вычисления. Thread-safe.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedRun is the on-disk form of a successful run.
type CachedRun struct {
	Schema     uint16
	Path       string
	Names      []string
	Values     []int64
	Statements int
	Created    time.Time
}

// OpenResultCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewResultCache(filepath.Join(base, app))
}

// NewResultCache opens the cache in dir, creating it if needed.
func NewResultCache(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *ResultCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// cacheKey: H(content || maxDepth || schema). Глубина влияет на результат,
// поэтому входит в ключ.
func cacheKey(content [32]byte, maxDepth int) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var buf [10]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(maxDepth)))
	binary.LittleEndian.PutUint16(buf[8:], resultCacheSchemaVersion)
	_, _ = h.Write(buf[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *ResultCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "runs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a run to the cache.
func (c *ResultCache) Put(key Digest, run *CachedRun) (err error) {
	if c == nil || run == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после удачного Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	run.Schema = resultCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(run); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a run from the cache. Entries written by another schema are misses.
func (c *ResultCache) Get(key Digest) (*CachedRun, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var run CachedRun
	if err := msgpack.NewDecoder(f).Decode(&run); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if run.Schema != resultCacheSchemaVersion || len(run.Names) != len(run.Values) {
		return nil, false, nil
	}
	return &run, true, nil
}

// DropAll removes every cached run.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "runs"))
}
