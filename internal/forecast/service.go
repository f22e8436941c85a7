package forecast

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Service owns the active location and keeps its latest forecast bundle in
// the store. The HTTP layer reads through Latest; the scheduler drives
// Refresh.
type Service struct {
	store  Store
	client *Client
	geo    *GeocodingClient

	mu     sync.RWMutex
	active Location
}

// NewService creates a Service tracking the initial location. geo may be nil;
// locations then keep whatever name they arrived with.
func NewService(store Store, client *Client, geo *GeocodingClient, initial Location) *Service {
	return &Service{
		store:  store,
		client: client,
		geo:    geo,
		active: initial,
	}
}

// ActiveLocation returns the location bundles are currently fetched for.
func (s *Service) ActiveLocation() Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActiveLocation switches the tracked location. The next Refresh fetches
// it; until then Latest keeps serving the previous location's data.
func (s *Service) SetActiveLocation(loc Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = loc
}

// Refresh fetches a fresh bundle for the active location and stores it. A
// location arriving without a display name is named through reverse
// geocoding first.
func (s *Service) Refresh(ctx context.Context) error {
	loc := s.ActiveLocation()

	if loc.Name == "" {
		name := FallbackLocationName
		if s.geo != nil {
			name = s.geo.ReverseName(loc.Latitude, loc.Longitude)
		}
		loc.Name = name

		s.mu.Lock()
		if s.active.Key() == loc.Key() {
			s.active.Name = name
		}
		s.mu.Unlock()
	}

	b, err := s.client.Fetch(ctx, loc)
	if err != nil {
		// Keep the last good bundle; the engine runs on fallbacks until
		// data arrives.
		return fmt.Errorf("fetch forecast for %s: %w", loc.Key(), err)
	}

	s.store.SaveBundle(loc, b)
	log.Printf("forecast: refreshed bundle for %s (%d days, %d hourly samples)",
		loc.Key(), len(b.Daily.Time), len(b.Hourly.Time))
	return nil
}

// History returns the bundles fetched for the active location between from
// and to (inclusive), oldest first.
func (s *Service) History(from, to time.Time) ([]Bundle, error) {
	return s.store.GetRange(s.ActiveLocation(), from, to)
}

// Latest returns the most recent bundle for the active location. ok is false
// when nothing has been fetched yet; callers continue on the returned empty
// bundle and the engine's fixed fallbacks.
func (s *Service) Latest() (Bundle, bool) {
	loc := s.ActiveLocation()
	b, err := s.store.GetLatest(loc)
	if err != nil {
		return Bundle{Location: loc}, false
	}
	return b, true
}
