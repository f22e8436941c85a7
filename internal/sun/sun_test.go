package sun

import (
	"testing"
	"time"
)

// TestEventsOrdering verifies the computed events sit in daylight order for a
// mid-latitude spring day.
func TestEventsOrdering(t *testing.T) {
	date := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	ev := EventsFor(date, 51.5074, -0.1278)

	if !ev.Sunrise.Before(ev.SolarNoon) {
		t.Errorf("sunrise %v not before solar noon %v", ev.Sunrise, ev.SolarNoon)
	}
	if !ev.SolarNoon.Before(ev.GoldenHour) {
		t.Errorf("solar noon %v not before golden hour %v", ev.SolarNoon, ev.GoldenHour)
	}
	if !ev.GoldenHour.Before(ev.Sunset) {
		t.Errorf("golden hour %v not before sunset %v", ev.GoldenHour, ev.Sunset)
	}
}
