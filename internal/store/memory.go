package store

import (
	"errors"
	"sync"
	"time"

	"github.com/solarsync/solar-sync/internal/forecast"
)

var (
	// ErrNotFound is returned when no bundle is available for a given location.
	ErrNotFound = errors.New("no forecast data for location")
)

// BundleHistory holds a time-ordered list of forecast bundles for a location.
type BundleHistory struct {
	Bundles []forecast.Bundle
}

// MemoryStore is a concurrency-safe in-memory implementation of the forecast
// store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: history
	data map[string]*BundleHistory

	// retention configuration
	maxHistory int           // max number of bundles per location
	maxAge     time.Duration // optional max age for bundles
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*BundleHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveBundle appends a new bundle for a location and enforces retention.
func (s *MemoryStore) SaveBundle(loc forecast.Location, b forecast.Bundle) {
	key := loc.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &BundleHistory{}
		s.data[key] = history
	}

	history.Bundles = append(history.Bundles, b)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Bundles) > s.maxHistory {
		over := len(history.Bundles) - s.maxHistory
		history.Bundles = history.Bundles[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Bundles); i++ {
			if !history.Bundles[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.Bundles) {
			history.Bundles = history.Bundles[i:]
		}
	}
}

// GetLatest returns the most recent bundle for a location.
func (s *MemoryStore) GetLatest(loc forecast.Location) (forecast.Bundle, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Bundles) == 0 {
		return forecast.Bundle{}, ErrNotFound
	}
	return history.Bundles[len(history.Bundles)-1], nil
}

// GetRange returns all bundles for a location fetched between from and to
// (inclusive).
func (s *MemoryStore) GetRange(loc forecast.Location, from, to time.Time) ([]forecast.Bundle, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Bundles) == 0 {
		return nil, ErrNotFound
	}

	var result []forecast.Bundle
	for _, b := range history.Bundles {
		if (b.FetchedAt.Equal(from) || b.FetchedAt.After(from)) &&
			(b.FetchedAt.Equal(to) || b.FetchedAt.Before(to)) {
			result = append(result, b)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
