package forecast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePayload = `{
	"utc_offset_seconds": 3600,
	"daily": {
		"time": ["2026-03-15", "2026-03-16"],
		"sunrise": ["2026-03-15T06:42", "2026-03-16T06:40"],
		"sunset": ["2026-03-15T18:12", "2026-03-16T18:14"]
	},
	"hourly": {
		"time": ["2026-03-15T00:00", "2026-03-15T01:00"],
		"temperature_2m": [8.4, 8.1],
		"weathercode": [2, 3],
		"uv_index": [0, 0]
	}
}`

// TestClientFetch verifies the Open-Meteo payload shape parses into an
// aligned bundle carrying the feed's UTC offset.
func TestClientFetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), 7)
	c.SetBaseURL(srv.URL)

	loc := Location{Name: "London, UK", Latitude: 51.5074, Longitude: -0.1278}
	b, err := c.Fetch(context.Background(), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.UTCOffsetSeconds != 3600 {
		t.Errorf("expected utc offset 3600, got %d", b.UTCOffsetSeconds)
	}
	if len(b.Daily.Time) != 2 || b.Daily.Sunrise[0] != "2026-03-15T06:42" {
		t.Errorf("daily table not parsed: %+v", b.Daily)
	}
	if len(b.Hourly.Time) != 2 || b.Hourly.WeatherCode[1] != 3 {
		t.Errorf("hourly table not parsed: %+v", b.Hourly)
	}
	if b.Location != loc {
		t.Errorf("bundle location drifted: %+v", b.Location)
	}

	for _, want := range []string{"hourly=temperature_2m%2Cweathercode%2Cuv_index", "daily=sunrise%2Csunset", "timezone=auto", "forecast_days=7"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

// TestClientFetchMisaligned verifies misaligned parallel arrays are rejected
// before they can enter the store.
func TestClientFetchMisaligned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{"time":["2026-03-15"],"sunrise":[],"sunset":[]},"hourly":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), 7)
	c.SetBaseURL(srv.URL)

	if _, err := c.Fetch(context.Background(), Location{}); err == nil {
		t.Fatal("expected error for misaligned daily table")
	}
}

// TestBundleLocalNow verifies the offset shift used for the location-local
// wall clock.
func TestBundleLocalNow(t *testing.T) {
	b := Bundle{UTCOffsetSeconds: 2 * 3600}
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	local := b.LocalNow(now)
	if local.Hour() != 12 || local.Minute() != 30 {
		t.Fatalf("expected 12:30 local, got %02d:%02d", local.Hour(), local.Minute())
	}
}
