package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/dkruglov/month-advisor/internal/weather"
)

// entry is one cached year of observations with its insertion time.
type entry struct {
	obs      weather.DailyObservations
	storedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of fetched observation
// years, keyed by location and year. Historical years never change, so
// eviction is purely about bounding memory, by entry count and age.
type MemoryStore struct {
	mu sync.RWMutex

	data map[string]entry

	maxEntries int           // max cached (location, year) pairs (0 = unlimited)
	maxAge     time.Duration // max entry age (0 = unlimited)
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// Non-positive limits are treated as unlimited.
func NewMemoryStore(maxEntries int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

func cacheKey(loc weather.Location, year int) string {
	return loc.Key() + ":" + strconv.Itoa(year)
}

// Save stores one year of observations and enforces the entry-count limit.
func (s *MemoryStore) Save(loc weather.Location, year int, obs weather.DailyObservations) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[cacheKey(loc, year)] = entry{obs: obs, storedAt: time.Now()}

	if s.maxEntries > 0 && len(s.data) > s.maxEntries {
		s.evictOldestLocked()
	}
}

// Get returns the cached observations for a location and year, if present
// and not past the age limit.
func (s *MemoryStore) Get(loc weather.Location, year int) (weather.DailyObservations, bool) {
	s.mu.RLock()
	e, ok := s.data[cacheKey(loc, year)]
	s.mu.RUnlock()

	if !ok {
		return weather.DailyObservations{}, false
	}
	if s.maxAge > 0 && time.Since(e.storedAt) > s.maxAge {
		s.mu.Lock()
		delete(s.data, cacheKey(loc, year))
		s.mu.Unlock()
		return weather.DailyObservations{}, false
	}
	return e.obs, true
}

// Len reports the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// evictOldestLocked drops entries oldest-first until the count limit holds.
// Caller must hold the write lock.
func (s *MemoryStore) evictOldestLocked() {
	for s.maxEntries > 0 && len(s.data) > s.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range s.data {
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.storedAt
			}
		}
		delete(s.data, oldestKey)
	}
}
