package store

import (
	"errors"
	"testing"
	"time"

	"github.com/solarsync/solar-sync/internal/forecast"
)

func bundleAt(t time.Time, offset int) forecast.Bundle {
	return forecast.Bundle{FetchedAt: t, UTCOffsetSeconds: offset}
}

// TestGetLatestMissing verifies the miss sentinel for unseen locations.
func TestGetLatestMissing(t *testing.T) {
	s := NewMemoryStore(0, 0)

	_, err := s.GetLatest(forecast.Location{Latitude: 51.5074, Longitude: -0.1278})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestSaveAndGetLatest verifies the newest bundle wins per location.
func TestSaveAndGetLatest(t *testing.T) {
	s := NewMemoryStore(0, 0)
	loc := forecast.Location{Name: "London, UK", Latitude: 51.5074, Longitude: -0.1278}
	base := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	s.SaveBundle(loc, bundleAt(base, 0))
	s.SaveBundle(loc, bundleAt(base.Add(time.Hour), 3600))

	got, err := s.GetLatest(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FetchedAt.Equal(base.Add(time.Hour)) || got.UTCOffsetSeconds != 3600 {
		t.Errorf("expected latest bundle, got %+v", got)
	}
}

// TestRetentionByCount verifies maxHistory drops the oldest bundles first.
func TestRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)
	loc := forecast.Location{Latitude: 1, Longitude: 2}
	base := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.SaveBundle(loc, bundleAt(base.Add(time.Duration(i)*time.Hour), 0))
	}

	bundles, err := s.GetRange(loc, base, base.Add(10*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("expected 2 retained bundles, got %d", len(bundles))
	}
	if !bundles[0].FetchedAt.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("expected oldest retained at +3h, got %v", bundles[0].FetchedAt)
	}
}

// TestGetRangeBounds verifies the inclusive range filter.
func TestGetRangeBounds(t *testing.T) {
	s := NewMemoryStore(0, 0)
	loc := forecast.Location{Latitude: 1, Longitude: 2}
	base := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		s.SaveBundle(loc, bundleAt(base.Add(time.Duration(i)*time.Hour), 0))
	}

	bundles, err := s.GetRange(loc, base.Add(time.Hour), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("expected 2 bundles in range, got %d", len(bundles))
	}

	if _, err := s.GetRange(loc, base.Add(10*time.Hour), base.Add(11*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty range, got %v", err)
	}
}

// TestLocationsIsolated verifies bundles never leak across location keys.
func TestLocationsIsolated(t *testing.T) {
	s := NewMemoryStore(0, 0)
	london := forecast.Location{Latitude: 51.5074, Longitude: -0.1278}
	tokyo := forecast.Location{Latitude: 35.6762, Longitude: 139.6503}

	s.SaveBundle(london, bundleAt(time.Now(), 0))

	if _, err := s.GetLatest(tokyo); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other location, got %v", err)
	}
}
