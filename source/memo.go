package source

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/framefixtures/array"
)

// memo is a bounded LRU of materialized arrays. Concurrent misses on the
// same key share one computation. Arrays are immutable, so one cached
// array may back many fixtures.
type memo struct {
	mu    sync.Mutex
	cache *lru.Cache
	group singleflight.Group
}

func newMemo(size int) *memo {
	return &memo{cache: lru.New(size)}
}

func (m *memo) lookup(key string) (array.Array, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.(array.Array), true
}

func (m *memo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

func (m *memo) get(key string, fill func() (array.Array, error)) (array.Array, error) {
	if a, ok := m.lookup(key); ok {
		return a, nil
	}
	v, err, _ := m.group.Do(key, func() (any, error) {
		if a, ok := m.lookup(key); ok {
			return a, nil
		}
		a, err := fill()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.cache.Add(key, a)
		m.mu.Unlock()
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(array.Array), nil
}
