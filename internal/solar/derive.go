package solar

import (
	"fmt"
	"math"
	"time"

	"github.com/solarsync/solar-sync/internal/forecast"
)

// Inputs is the full set of values the derived state is a projection of.
// Progress semantics: 0 = sunrise, 1 = sunset, negative = pre-dawn, above
// one = post-sunset. When DragActive is set, DragProgress overrides the
// wall-clock-derived value.
type Inputs struct {
	Date             time.Time
	Daily            forecast.DailyTable
	Hourly           forecast.HourlyTable
	WallClockMinutes int
	DragActive       bool
	DragProgress     float64
}

// Weather bundles the classified weather with its display metadata and the
// sampled temperature.
type Weather struct {
	Kind        Kind    `json:"kind"`
	Display     Display `json:"display"`
	Temperature int     `json:"temperature"`
}

// UV pairs the raw UV index with its severity level.
type UV struct {
	Value float64 `json:"value"`
	Level string  `json:"level"`
}

// Event describes the next sunrise or sunset with a countdown.
type Event struct {
	Name      string `json:"name"`
	Countdown string `json:"countdown"`
	Detail    string `json:"detail"`
	Icon      string `json:"icon"`
}

// State is the derived display bundle. It has no identity of its own: it is
// recomputed wholesale whenever any input changes and never partially
// mutated.
type State struct {
	Clock           string    `json:"clock"`
	Period          string    `json:"period"`
	Progress        float64   `json:"progress"`
	ClampedProgress float64   `json:"clampedProgress"`
	MinuteOfDay     int       `json:"minuteOfDay"`
	IsNight         bool      `json:"isNight"`
	Window          Window    `json:"window"`
	Weather         Weather   `json:"weather"`
	UV              UV        `json:"uv"`
	VitaminD        VitaminD  `json:"vitaminD"`
	Phase           PhaseInfo `json:"phase"`
	Tip             string    `json:"tip"`
	NextEvent       Event     `json:"nextEvent"`
}

// Derive projects the inputs into a State. It is a pure, deterministic total
// function: identical inputs always yield an identical bundle, which is what
// makes the result safe to memoize and trivial to test.
func Derive(in Inputs) State {
	window := ResolveWindow(in.Date, in.Daily)
	span := window.Span()
	if span <= 0 {
		// Data-integrity guard; ResolveWindow already enforces this.
		window = DefaultWindow()
		span = window.Span()
	}

	progress := (float64(in.WallClockMinutes) - float64(window.Sunrise)) / float64(span)
	if in.DragActive {
		progress = in.DragProgress
	}
	clamped := clamp01(progress)

	// Map progress back to an absolute minute of day, then normalize into
	// [0,1440) so progress values that wrap past midnight stay addressable.
	minute := int(math.Round(float64(window.Sunrise) + progress*float64(span)))
	for minute < 0 {
		minute += minutesPerDay
	}
	for minute >= minutesPerDay {
		minute -= minutesPerDay
	}

	hour := minute / 60
	min := minute % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	clockHour := hour
	switch {
	case hour > 12:
		clockHour = hour - 12
	case hour == 0:
		clockHour = 12
	}

	sample := LookupSample(in.Date, hour, in.Hourly)

	night := minute < window.Sunrise || minute > window.Sunset
	kind := Classify(sample.WeatherCode, night)

	phase, tip := classifyPhase(progress, clamped, sample.UVIndex)
	if kind == KindRain {
		tip = rainTip
	}

	return State{
		Clock:           fmt.Sprintf("%d:%02d", clockHour, min),
		Period:          period,
		Progress:        progress,
		ClampedProgress: clamped,
		MinuteOfDay:     minute,
		IsNight:         night,
		Window:          window,
		Weather: Weather{
			Kind:        kind,
			Display:     kind.Display(),
			Temperature: sample.Temperature,
		},
		UV: UV{
			Value: sample.UVIndex,
			Level: UVLevel(sample.UVIndex),
		},
		VitaminD:  VitaminDStatus(sample.UVIndex),
		Phase:     phase,
		Tip:       tip,
		NextEvent: nextEvent(minute, window),
	}
}

// nextEvent computes the upcoming solar event relative to the (possibly
// simulated) minute of day. After sunset the countdown crosses midnight to
// the next day's sunrise, approximated with the current window.
func nextEvent(minute int, w Window) Event {
	switch {
	case minute < w.Sunrise:
		return Event{
			Name:      "Sunrise",
			Countdown: formatCountdown(w.Sunrise - minute),
			Detail:    "until dawn",
			Icon:      "wb_twilight",
		}
	case minute < w.Sunset:
		return Event{
			Name:      "Sunset",
			Countdown: formatCountdown(w.Sunset - minute),
			Detail:    "remaining",
			Icon:      "bedtime",
		}
	default:
		return Event{
			Name:      "Sunrise",
			Countdown: formatCountdown(minutesPerDay - minute + w.Sunrise),
			Detail:    "until tomorrow",
			Icon:      "wb_twilight",
		}
	}
}

func formatCountdown(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
