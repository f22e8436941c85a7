// Package prefs persists user personalization: skin type, chronotype and the
// manual location override. Preferences survive restarts through a small JSON
// file; everything else in the service is rebuildable from upstream feeds.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// SavedLocation is a manually selected place used when precise location is
// off.
type SavedLocation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode,omitempty"`
}

// Preferences is the full personalization record.
type Preferences struct {
	SkinType        string         `json:"skinType"`
	Chronotype      string         `json:"chronotype"`
	PreciseLocation bool           `json:"preciseLocation"`
	SavedLocation   *SavedLocation `json:"savedLocation,omitempty"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{
		SkinType:        "Type III",
		Chronotype:      "Bear",
		PreciseLocation: true,
	}
}

// Validate checks the record against the closed catalogs.
func (p Preferences) Validate() error {
	if !catalogHas(SkinTypes, p.SkinType) {
		return fmt.Errorf("unknown skin type %q", p.SkinType)
	}
	if !catalogHas(Chronotypes, p.Chronotype) {
		return fmt.Errorf("unknown chronotype %q", p.Chronotype)
	}
	if !p.PreciseLocation && p.SavedLocation == nil {
		return errors.New("manual location mode requires a saved location")
	}
	return nil
}

// Store persists preferences to a JSON file and caches the current record.
type Store struct {
	path string

	mu      sync.RWMutex
	current Preferences
}

// Open loads preferences from path, falling back to Defaults when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, current: Defaults()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stored preferences invalid: %w", err)
	}

	s.current = p
	return s, nil
}

// Current returns the active preferences.
func (s *Store) Current() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save validates and persists new preferences. A saved location arriving
// without an ID is assigned one.
func (s *Store) Save(p Preferences) (Preferences, error) {
	if err := p.Validate(); err != nil {
		return Preferences{}, err
	}

	if p.SavedLocation != nil && p.SavedLocation.ID == "" {
		loc := *p.SavedLocation
		loc.ID = uuid.NewString()
		p.SavedLocation = &loc
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return Preferences{}, fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return Preferences{}, fmt.Errorf("write preferences: %w", err)
	}

	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
	return p, nil
}
