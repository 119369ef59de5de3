package spriteanim

import (
	"container/list"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameKey identifies one materialized frame image: a texture path, the
// animation it belongs to, and the frame index within it.
type FrameKey struct {
	TexturePath string
	Animation   string
	Frame       int
}

// ImageCache is an LRU cache of materialized *ebiten.Image frame crops,
// keyed by FrameKey, so a host need not re-crop the same atlas region on
// every tick.
type ImageCache struct {
	capacity int
	entries  map[FrameKey]*cacheEntry
	lruList  *list.List
	mutex    sync.RWMutex
	hits     uint64
	misses   uint64
}

type cacheEntry struct {
	key     FrameKey
	image   *ebiten.Image
	element *list.Element
}

// CacheStats reports hit/miss counters and current occupancy.
type CacheStats struct {
	Hits     uint64
	Misses   uint64
	Size     int
	Capacity int
	HitRate  float64
}

// NewImageCache creates a frame image cache holding at most capacity
// entries. capacity <= 0 falls back to a default of 100.
func NewImageCache(capacity int) *ImageCache {
	if capacity <= 0 {
		capacity = 100
	}
	return &ImageCache{
		capacity: capacity,
		entries:  make(map[FrameKey]*cacheEntry, capacity),
		lruList:  list.New(),
	}
}

// Get retrieves a cached frame image, or nil if absent.
func (c *ImageCache) Get(key FrameKey) *ebiten.Image {
	c.mutex.RLock()
	entry, found := c.entries[key]
	c.mutex.RUnlock()

	if !found {
		c.mutex.Lock()
		c.misses++
		c.mutex.Unlock()
		return nil
	}

	c.mutex.Lock()
	c.lruList.MoveToFront(entry.element)
	c.hits++
	c.mutex.Unlock()
	return entry.image
}

// Put inserts or replaces a frame image, evicting the least recently used
// entry if the cache is at capacity.
func (c *ImageCache) Put(key FrameKey, image *ebiten.Image) {
	if image == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry, found := c.entries[key]; found {
		entry.image = image
		c.lruList.MoveToFront(entry.element)
		return
	}

	if c.lruList.Len() >= c.capacity {
		c.evictLRU()
	}

	element := c.lruList.PushFront(key)
	c.entries[key] = &cacheEntry{key: key, image: image, element: element}
}

func (c *ImageCache) evictLRU() {
	element := c.lruList.Back()
	if element == nil {
		return
	}
	key := element.Value.(FrameKey)
	c.lruList.Remove(element)
	delete(c.entries, key)
}

// Clear empties the cache and resets its statistics.
func (c *ImageCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[FrameKey]*cacheEntry, c.capacity)
	c.lruList.Init()
	c.hits = 0
	c.misses = 0
}

// Capacity returns the maximum number of entries the cache will hold.
func (c *ImageCache) Capacity() int {
	return c.capacity
}

// Size returns the number of entries currently cached.
func (c *ImageCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of cache performance counters.
func (c *ImageCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := c.hits + c.misses
	var rate float64
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     len(c.entries),
		Capacity: c.capacity,
		HitRate:  rate,
	}
}
