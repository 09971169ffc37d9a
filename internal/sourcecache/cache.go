package sourcecache

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kurator/internal/fileutil"
	"kurator/internal/logging"
)

// DefaultMaxEntries bounds a source's cache when no capacity is configured.
const DefaultMaxEntries = 500

// cacheFile is the persisted shape of a per-source cache.
type cacheFile struct {
	ProcessedKeys []string  `json:"processed_keys"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Cache is a bounded FIFO memory of processed identity keys for one source.
// The zero value is not usable; construct with NewCache.
type Cache struct {
	path     string
	logger   *slog.Logger
	mu       sync.RWMutex
	capacity int
	ring     []string
	head     int
	size     int
	index    map[string]struct{}
}

// NewCache creates a cache persisted at path. If path is empty the cache is
// memory-only. maxEntries <= 0 falls back to DefaultMaxEntries.
func NewCache(path string, maxEntries int, logger *slog.Logger) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		path:     path,
		logger:   logging.NewComponentLogger(logger, "sourcecache"),
		capacity: maxEntries,
		ring:     make([]string, maxEntries),
		index:    make(map[string]struct{}, maxEntries),
	}
}

// Load reads the persisted cache from disk. A missing or corrupt file leaves
// the cache empty; corruption is logged but never fatal to the pipeline.
func (c *Cache) Load() {
	if c.path == "" {
		return
	}

	var payload cacheFile
	if err := fileutil.ReadJSON(c.path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("failed to load source cache",
				logging.String(logging.FieldEventType, "sourcecache_load_failed"),
				logging.String("path", c.path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "cache will start empty"),
				logging.String(logging.FieldImpact, "previously seen listings may be re-queued once"))
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	keys := payload.ProcessedKeys
	if len(keys) > c.capacity {
		keys = keys[len(keys)-c.capacity:]
	}
	for _, key := range keys {
		c.insert(key)
	}

	c.logger.Debug("loaded source cache",
		logging.Int("entry_count", c.size),
		logging.String("path", c.path))
}

// IsProcessed reports whether key is present in the retention window.
func (c *Cache) IsProcessed(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, found := c.index[key]
	return found
}

// MarkProcessed records key, evicting the oldest entry when the cache is at
// capacity. Marking an already-present key is a no-op: FIFO retention is by
// first insertion, not most recent touch.
func (c *Cache) MarkProcessed(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.index[key]; found {
		return
	}
	c.insert(key)
}

// Save persists the cache atomically. Memory-only caches are a no-op.
func (c *Cache) Save() error {
	if c.path == "" {
		return nil
	}

	c.mu.RLock()
	payload := cacheFile{
		ProcessedKeys: c.orderedKeys(),
		UpdatedAt:     time.Now().UTC(),
	}
	c.mu.RUnlock()

	return fileutil.WriteJSONAtomic(c.path, payload)
}

// Len returns the number of retained keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Keys returns the retained keys oldest first.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.orderedKeys()
}

// insert assumes the caller holds the write lock and key is absent.
func (c *Cache) insert(key string) {
	if c.size == c.capacity {
		oldest := c.ring[c.head]
		delete(c.index, oldest)
		c.ring[c.head] = key
		c.head = (c.head + 1) % c.capacity
	} else {
		c.ring[(c.head+c.size)%c.capacity] = key
		c.size++
	}
	c.index[key] = struct{}{}
}

func (c *Cache) orderedKeys() []string {
	keys := make([]string, 0, c.size)
	for i := 0; i < c.size; i++ {
		keys = append(keys, c.ring[(c.head+i)%c.capacity])
	}
	return keys
}

func (c *Cache) reset() {
	c.ring = make([]string, c.capacity)
	c.head = 0
	c.size = 0
	c.index = make(map[string]struct{}, c.capacity)
}
