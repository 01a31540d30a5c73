package cache

import (
	"context"
	"sync"
	"time"
)

const defaultTTL = 10 * time.Minute

// MemoryCache is an in-process cache with TTL expiry and a background
// janitor. It is the default cache when no Redis address is configured.
type MemoryCache struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	stopCh chan struct{}
	once   sync.Once
}

type memoryItem struct {
	value  []byte
	expiry time.Time
}

// NewMemoryCache creates a memory cache and starts its janitor
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	mc := &MemoryCache{
		items:  make(map[string]memoryItem),
		stopCh: make(chan struct{}),
	}
	go mc.janitor(cleanupInterval)
	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists || time.Now().After(item.expiry) {
		return nil, false
	}
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	mc.mu.Lock()
	mc.items[key] = memoryItem{value: value, expiry: time.Now().Add(ttl)}
	mc.mu.Unlock()
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

// Close stops the janitor goroutine
func (mc *MemoryCache) Close() error {
	mc.once.Do(func() { close(mc.stopCh) })
	return nil
}

func (mc *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			mc.mu.Lock()
			for key, item := range mc.items {
				if now.After(item.expiry) {
					delete(mc.items, key)
				}
			}
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}
