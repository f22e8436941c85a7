// Package solar implements the solar timeline engine: resolving the
// sunrise/sunset window for a date, mapping pointer gestures on the curved
// timeline widget to normalized progress, and deriving the full display
// bundle (clock, weather, UV, circadian phase, next event) from them.
//
// Every function in this package is total: for any well-typed input it
// returns a usable result. A real-time display must never go blank because
// of a lookup miss, so missing or malformed data resolves to fixed fallbacks
// instead of errors.
package solar

import (
	"time"

	"github.com/solarsync/solar-sync/internal/forecast"
)

// Window is the sunrise/sunset pair for one calendar date, in minutes from
// local midnight.
type Window struct {
	Sunrise int `json:"sunriseMinutes"`
	Sunset  int `json:"sunsetMinutes"`
}

const (
	defaultSunriseMinutes = 6*60 + 30
	defaultSunsetMinutes  = 18*60 + 30

	minutesPerDay = 1440

	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04"
)

// DefaultWindow is used whenever the daily table does not cover the requested
// date or carries a degenerate sunrise/sunset pair. It always satisfies
// Sunrise < Sunset.
func DefaultWindow() Window {
	return Window{Sunrise: defaultSunriseMinutes, Sunset: defaultSunsetMinutes}
}

// Span returns the daylight length in minutes.
func (w Window) Span() int {
	return w.Sunset - w.Sunrise
}

// ResolveWindow finds the sunrise/sunset window for the given date in the
// daily table. The date component of the table timestamps is discarded; the
// window is only used for intraday positioning. A date missing from the
// table, an unparseable timestamp, and a window with sunset <= sunrise all
// resolve to DefaultWindow.
func ResolveWindow(date time.Time, daily forecast.DailyTable) Window {
	key := date.Format(dateLayout)
	for i, d := range daily.Time {
		if d != key {
			continue
		}
		if i >= len(daily.Sunrise) || i >= len(daily.Sunset) {
			break
		}
		rise, okRise := minutesFromISO(daily.Sunrise[i])
		set, okSet := minutesFromISO(daily.Sunset[i])
		if !okRise || !okSet || set <= rise {
			break
		}
		return Window{Sunrise: rise, Sunset: set}
	}
	return DefaultWindow()
}

// minutesFromISO reduces a local ISO date-time to minutes from midnight.
func minutesFromISO(s string) (int, bool) {
	t, err := time.Parse(localTimeLayout, s)
	if err != nil {
		// Some feeds include seconds.
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return 0, false
		}
	}
	return t.Hour()*60 + t.Minute(), true
}
