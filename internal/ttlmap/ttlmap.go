// Package ttlmap provides a concurrency-safe map whose entries expire after
// a period without access.
package ttlmap

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	lastSeen time.Time
}

// Map holds values keyed by string. Every Get refreshes the entry's
// last-seen time; Sweep drops entries idle for longer than the TTL.
type Map[V any] struct {
	mu    sync.Mutex
	items map[string]*entry[V]
	ttl   time.Duration
	now   func() time.Time
}

// New creates a Map with the given idle TTL.
func New[V any](ttl time.Duration) *Map[V] {
	return &Map[V]{
		items: make(map[string]*entry[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (m *Map[V]) WithClock(now func() time.Time) *Map[V] {
	m.now = now
	return m
}

// Get returns the value for key, creating it with create when absent.
func (m *Map[V]) Get(key string, create func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		e = &entry[V]{value: create()}
		m.items[key] = e
	}
	e.lastSeen = m.now()
	return e.value
}

// Peek returns the value for key without creating or refreshing it.
func (m *Map[V]) Peek(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Delete removes key.
func (m *Map[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Len reports the number of live entries.
func (m *Map[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Sweep removes idle entries and returns how many were dropped.
func (m *Map[V]) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	n := 0
	for key, e := range m.items {
		if e.lastSeen.Before(cutoff) {
			delete(m.items, key)
			n++
		}
	}
	return n
}

// Run sweeps on every interval until ctx is cancelled.
func (m *Map[V]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
