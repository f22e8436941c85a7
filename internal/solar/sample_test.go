package solar

import (
	"reflect"
	"testing"

	"github.com/solarsync/solar-sync/internal/forecast"
)

// TestLookupSampleHit verifies exact-hour prefix matching and temperature
// rounding.
func TestLookupSampleHit(t *testing.T) {
	hourly := forecast.HourlyTable{
		Time:        []string{"2026-03-15T11:00", "2026-03-15T12:00", "2026-03-15T13:00"},
		Temperature: []float64{11.2, 12.6, 13.4},
		WeatherCode: []int{2, 61, 3},
		UVIndex:     []float64{2.5, 4.1, 3.8},
	}

	s := LookupSample(mustDate(t, "2026-03-15"), 12, hourly)
	if s.Temperature != 13 {
		t.Errorf("expected temperature rounded to 13, got %d", s.Temperature)
	}
	if s.UVIndex != 4.1 {
		t.Errorf("expected uv 4.1, got %v", s.UVIndex)
	}
	if s.WeatherCode != 61 {
		t.Errorf("expected weather code 61, got %d", s.WeatherCode)
	}
}

// TestLookupSampleFallback verifies the fixed neutral fallback for hours the
// table does not cover.
func TestLookupSampleFallback(t *testing.T) {
	hourly := forecast.HourlyTable{
		Time:        []string{"2026-03-15T12:00"},
		Temperature: []float64{12.6},
		WeatherCode: []int{61},
		UVIndex:     []float64{4.1},
	}

	want := Sample{Temperature: 20, UVIndex: 0, WeatherCode: 1}

	// Hour missing from the table.
	if got := LookupSample(mustDate(t, "2026-03-15"), 9, hourly); got != want {
		t.Errorf("hour miss: expected %+v, got %+v", want, got)
	}
	// Date beyond the fetched horizon.
	if got := LookupSample(mustDate(t, "2026-06-01"), 12, hourly); got != want {
		t.Errorf("date miss: expected %+v, got %+v", want, got)
	}
	// Empty table.
	if got := LookupSample(mustDate(t, "2026-03-15"), 12, forecast.HourlyTable{}); got != want {
		t.Errorf("empty table: expected %+v, got %+v", want, got)
	}
}

// TestLookupSampleIdempotent verifies that repeated calls with identical
// arguments return identical results.
func TestLookupSampleIdempotent(t *testing.T) {
	hourly := forecast.HourlyTable{
		Time:        []string{"2026-03-15T12:00"},
		Temperature: []float64{12.6},
		WeatherCode: []int{61},
		UVIndex:     []float64{4.1},
	}

	first := LookupSample(mustDate(t, "2026-03-15"), 12, hourly)
	second := LookupSample(mustDate(t, "2026-03-15"), 12, hourly)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("lookup not idempotent: %+v vs %+v", first, second)
	}
}
