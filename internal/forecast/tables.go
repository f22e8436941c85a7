package forecast

import (
	"fmt"
	"time"
)

// Location identifies the place a forecast bundle is fetched for.
type Location struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f:%.4f", l.Latitude, l.Longitude)
}

// DailyTable mirrors the Open-Meteo daily block: index-aligned parallel
// arrays keyed by YYYY-MM-DD date strings. Dates are unique and ordered.
type DailyTable struct {
	Time    []string `json:"time"`
	Sunrise []string `json:"sunrise"`
	Sunset  []string `json:"sunset"`
}

// HourlyTable mirrors the Open-Meteo hourly block: index-aligned parallel
// arrays keyed by local ISO timestamps at whole-hour alignment.
type HourlyTable struct {
	Time        []string  `json:"time"`
	Temperature []float64 `json:"temperature_2m"`
	WeatherCode []int     `json:"weathercode"`
	UVIndex     []float64 `json:"uv_index"`
}

// Bundle is one fetched forecast for a location: the daily sun table and the
// matching hourly table, both in the location's local time.
type Bundle struct {
	Location         Location    `json:"location"`
	FetchedAt        time.Time   `json:"fetchedAt"`
	UTCOffsetSeconds int         `json:"utcOffsetSeconds"`
	Daily            DailyTable  `json:"daily"`
	Hourly           HourlyTable `json:"hourly"`
}

// LocalNow shifts t into the bundle's local clock. The returned value keeps
// the UTC location; only the wall-clock reading matters to callers.
func (b Bundle) LocalNow(t time.Time) time.Time {
	return t.UTC().Add(time.Duration(b.UTCOffsetSeconds) * time.Second)
}

// Store is the contract the in-memory store (and any future persistent store)
// must satisfy.
type Store interface {
	SaveBundle(loc Location, b Bundle)
	GetLatest(loc Location) (Bundle, error)
	GetRange(loc Location, from, to time.Time) ([]Bundle, error)
}
