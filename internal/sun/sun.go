// Package sun computes astronomical extras the upstream feed does not carry:
// solar noon and the evening golden hour.
package sun

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

// Events holds the computed solar events for one day at one place.
type Events struct {
	Sunrise    time.Time
	Sunset     time.Time
	SolarNoon  time.Time
	GoldenHour time.Time
}

// EventsFor computes the solar events for the given date and coordinates.
// Times come back in the location of the date value.
func EventsFor(date time.Time, lat, lon float64) Events {
	times := suncalc.GetTimes(date, lat, lon)
	return Events{
		Sunrise:    times["sunrise"].Value,
		Sunset:     times["sunset"].Value,
		SolarNoon:  times["solarNoon"].Value,
		GoldenHour: times["goldenHour"].Value,
	}
}
