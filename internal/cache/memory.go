package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// sweepInterval bounds how often Set scans for expired entries
const sweepInterval = time.Minute

type entry struct {
	value   []byte
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// MemoryStore keeps entries in process. Expired entries are dropped when
// read and by a periodic sweep on write.
type MemoryStore struct {
	entries   map[string]entry
	now       func() time.Time
	lastSweep time.Time
	mu        sync.RWMutex
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns a live entry
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()
	if !exists {
		return nil, false, nil
	}
	if !e.expired(s.now()) {
		return e.value, true, nil
	}

	s.mu.Lock()
	if e, exists := s.entries[key]; exists && e.expired(s.now()) {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	return nil, false, nil
}

// Set stores value; a non-positive ttl never expires
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	e := entry{value: value}
	if ttl > 0 {
		e.expires = now.Add(ttl)
	}
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) sweep(now time.Time) {
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

// Invalidate deletes key and every key nested under it
func (s *MemoryStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.entries {
		if matches(k, key) {
			delete(s.entries, k)
		}
	}
	return nil
}

// matches reports whether k is key itself or a key built from it by Key
func matches(k, key string) bool {
	return k == key || strings.HasPrefix(k, key+separator)
}
