package state

import (
	"sync"

	"github.com/jaehong21/ats/internal/service"
)

// Key addresses one result-set slot. List and Detail results of the same
// service land in different slots so a load that completes after the user
// has navigated away can never cross-assign items of the wrong kind.
type Key struct {
	Service service.ID
	View    service.ViewType
}

// KeyFor returns the cache slot for a view state.
func KeyFor(view service.ViewState) Key {
	return Key{Service: view.Service, View: view.View}
}

// Cache holds the cached result set per slot. The controller is the single
// writer, replacing a slot wholesale after each successful load; renders
// read copies.
type Cache struct {
	mu    sync.RWMutex
	slots map[Key]service.Data
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{slots: make(map[Key]service.Data)}
}

// Replace swaps the slot's result set for data. Previous contents are
// discarded, never merged.
func (c *Cache) Replace(key Key, data service.Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[key] = service.Data{Items: cloneItems(data.Items)}
}

// Get returns a copy of the slot's result set.
func (c *Cache) Get(key Key) (service.Data, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.slots[key]
	if !ok {
		return service.Data{}, false
	}
	return service.Data{Items: cloneItems(data.Items)}, true
}

// Clear drops the slot.
func (c *Cache) Clear(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, key)
}

// Len returns the number of populated slots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

func cloneItems(items []service.Item) []service.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]service.Item, len(items))
	copy(dup, items)
	return dup
}
