package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultCapacity bounds the store when no explicit capacity is given. Fifty
// responses cover a browsing session comfortably while keeping worst-case
// memory in the low tens of megabytes.
const DefaultCapacity = 50

type entry struct {
	value        any
	expiresAt    time.Time
	lastAccessed time.Time
}

// Store is a capacity-bounded response cache with per-entry TTLs. Expired
// entries are dropped lazily on read; when the store is full, a write first
// sweeps out everything expired and only then falls back to evicting the
// least recently used entry. A single mutex serializes all access: entries
// are whole decoded responses, so hold times are tiny and contention is not
// a concern at the request rates a music client produces.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*entry
	now      func() time.Time
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		entries:  make(map[string]*entry),
		now:      time.Now,
	}
}

// Get returns the cached value for key. An entry whose TTL has passed is
// removed and reported as a miss; a hit refreshes the entry's recency.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	now := s.now()
	if !now.Before(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	e.lastAccessed = now
	return e.value, true
}

// Set stores value under key for ttl. Overwriting an existing key never
// triggers eviction; inserting into a full store does.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		s.evict(now)
	}
	s.entries[key] = &entry{
		value:        value,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
}

// evict clears room for one insertion: every expired entry goes first, and
// only if none were expired does the least recently used entry go. Ties on
// recency break toward the lexicographically smallest key so eviction stays
// deterministic. Callers must hold s.mu.
func (s *Store) evict(now time.Time) {
	dropped := false
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
			dropped = true
		}
	}
	if dropped {
		return
	}

	var victim string
	var oldest *entry
	for k, e := range s.entries {
		switch {
		case oldest == nil,
			e.lastAccessed.Before(oldest.lastAccessed),
			e.lastAccessed.Equal(oldest.lastAccessed) && k < victim:
			victim, oldest = k, e
		}
	}
	if oldest != nil {
		delete(s.entries, victim)
	}
}

// Invalidate removes every entry whose key starts with prefix and returns
// how many were removed.
func (s *Store) Invalidate(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

// InvalidateAll empties the store.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	s.mu.Unlock()
}

// Len reports how many entries the store currently holds, expired ones
// included until a read or eviction sweeps them.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
