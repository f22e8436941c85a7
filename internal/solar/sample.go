package solar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/solarsync/solar-sync/internal/forecast"
)

// Sample is the hourly weather reading backing a derived state.
type Sample struct {
	Temperature int     `json:"temperature"`
	UVIndex     float64 `json:"uvIndex"`
	WeatherCode int     `json:"weatherCode"`
}

// fallbackSample stands in when the hourly table does not cover the requested
// hour, e.g. a date beyond the fetched forecast horizon. The values are a
// fixed placeholder regardless of season or location; the derived-state
// calculator relies on them to stay total, so they must not change.
var fallbackSample = Sample{Temperature: 20, UVIndex: 0, WeatherCode: 1}

// LookupSample returns the hourly sample for the given date and hour. The
// feed is hourly-aligned, so the match is a prefix search on
// "YYYY-MM-DDThh:00". Repeated calls with identical arguments return
// identical results.
func LookupSample(date time.Time, hour int, hourly forecast.HourlyTable) Sample {
	prefix := fmt.Sprintf("%sT%02d:00", date.Format(dateLayout), hour)
	for i, ts := range hourly.Time {
		if !strings.HasPrefix(ts, prefix) {
			continue
		}
		if i >= len(hourly.Temperature) || i >= len(hourly.WeatherCode) || i >= len(hourly.UVIndex) {
			break
		}
		return Sample{
			Temperature: int(math.Round(hourly.Temperature[i])),
			UVIndex:     hourly.UVIndex[i],
			WeatherCode: hourly.WeatherCode[i],
		}
	}
	return fallbackSample
}
