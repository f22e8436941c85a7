package solar

import (
	"reflect"
	"testing"

	"github.com/solarsync/solar-sync/internal/forecast"
)

func fixtureDaily() forecast.DailyTable {
	return forecast.DailyTable{
		Time:    []string{"2026-03-15"},
		Sunrise: []string{"2026-03-15T06:30"},
		Sunset:  []string{"2026-03-15T18:30"},
	}
}

func fixtureHourly(code int, uv float64) forecast.HourlyTable {
	return forecast.HourlyTable{
		Time:        []string{"2026-03-15T12:00"},
		Temperature: []float64{21.4},
		WeatherCode: []int{code},
		UVIndex:     []float64{uv},
	}
}

// TestDeriveSolarNoon verifies the end-to-end scenario at progress 0.5:
// 12:30 PM, Solar Noon phase, high UV with the protective-exposure tip, and
// an active vitamin D status.
func TestDeriveSolarNoon(t *testing.T) {
	st := Derive(Inputs{
		Date:         mustDate(t, "2026-03-15"),
		Daily:        fixtureDaily(),
		Hourly:       fixtureHourly(0, 7),
		DragActive:   true,
		DragProgress: 0.5,
	})

	if st.MinuteOfDay != 750 {
		t.Fatalf("expected minute 750, got %d", st.MinuteOfDay)
	}
	if st.Clock != "12:30" || st.Period != "PM" {
		t.Errorf("expected 12:30 PM, got %s %s", st.Clock, st.Period)
	}
	if st.Phase.Title != "Solar Noon" {
		t.Errorf("expected Solar Noon phase, got %q", st.Phase.Title)
	}
	if st.IsNight {
		t.Error("solar noon must not read as night")
	}
	if st.Weather.Kind != KindSunny {
		t.Errorf("expected sunny weather, got %s", st.Weather.Kind)
	}
	if st.Weather.Temperature != 21 {
		t.Errorf("expected temperature 21, got %d", st.Weather.Temperature)
	}
	if st.UV.Level != "High" {
		t.Errorf("expected UV level High, got %q", st.UV.Level)
	}
	if !st.VitaminD.Active || st.VitaminD.Status != "Synthesizing" {
		t.Errorf("expected active vitamin D synthesis, got %+v", st.VitaminD)
	}
	if st.Tip != noonHighUVTip {
		t.Errorf("expected protection tip at uv>5, got %q", st.Tip)
	}
	if st.NextEvent.Name != "Sunset" || st.NextEvent.Countdown != "6h 0m" || st.NextEvent.Detail != "remaining" {
		t.Errorf("unexpected next event: %+v", st.NextEvent)
	}
}

// TestDerivePreDawn verifies the wall-clock path before sunrise: negative
// progress, Pre-Dawn phase, night-forced weather for clear codes, and a
// positive sunrise countdown.
func TestDerivePreDawn(t *testing.T) {
	st := Derive(Inputs{
		Date:             mustDate(t, "2026-03-15"),
		Daily:            fixtureDaily(),
		Hourly:           fixtureHourly(0, 0),
		WallClockMinutes: 300, // 05:00
	})

	if st.Progress >= 0 {
		t.Fatalf("expected negative progress before sunrise, got %v", st.Progress)
	}
	if st.MinuteOfDay != 300 {
		t.Fatalf("expected minute 300, got %d", st.MinuteOfDay)
	}
	if st.Phase.Title != "Pre-Dawn" {
		t.Errorf("expected Pre-Dawn phase, got %q", st.Phase.Title)
	}
	if !st.IsNight {
		t.Error("pre-dawn must read as night")
	}
	// Hour 5 is absent from the hourly fixture, so the fallback sample's
	// clear code 1 applies and night forces the Night kind.
	if st.Weather.Kind != KindNight {
		t.Errorf("expected night weather, got %s", st.Weather.Kind)
	}
	if st.NextEvent.Name != "Sunrise" || st.NextEvent.Countdown != "1h 30m" || st.NextEvent.Detail != "until dawn" {
		t.Errorf("unexpected next event: %+v", st.NextEvent)
	}
}

// TestDeriveMidnightWrap verifies that progress values wrapping past
// midnight normalize into [0,1440) and count down to the next sunrise.
func TestDeriveMidnightWrap(t *testing.T) {
	st := Derive(Inputs{
		Date:         mustDate(t, "2026-03-15"),
		Daily:        fixtureDaily(),
		Hourly:       fixtureHourly(0, 0),
		DragActive:   true,
		DragProgress: 1.5,
	})

	if st.MinuteOfDay != 30 {
		t.Fatalf("expected minute 30 after wrap, got %d", st.MinuteOfDay)
	}
	if st.Clock != "12:30" || st.Period != "AM" {
		t.Errorf("expected 12:30 AM, got %s %s", st.Clock, st.Period)
	}
	if st.Phase.Title != "Post-Sunset" {
		t.Errorf("expected Post-Sunset phase, got %q", st.Phase.Title)
	}
	if st.NextEvent.Name != "Sunrise" || st.NextEvent.Countdown != "6h 0m" {
		t.Errorf("unexpected next event: %+v", st.NextEvent)
	}
}

// TestDeriveEveningCountdown verifies the post-sunset countdown crosses
// midnight to the next sunrise.
func TestDeriveEveningCountdown(t *testing.T) {
	st := Derive(Inputs{
		Date:             mustDate(t, "2026-03-15"),
		Daily:            fixtureDaily(),
		Hourly:           fixtureHourly(0, 0),
		WallClockMinutes: 1200, // 20:00
	})

	if st.Phase.Title != "Post-Sunset" {
		t.Errorf("expected Post-Sunset phase, got %q", st.Phase.Title)
	}
	if st.NextEvent.Name != "Sunrise" || st.NextEvent.Countdown != "10h 30m" || st.NextEvent.Detail != "until tomorrow" {
		t.Errorf("unexpected next event: %+v", st.NextEvent)
	}
}

// TestNextEventAccountsForWholeDay verifies that countdown plus elapsed time
// covers the day with nothing lost or double-counted across midnight.
func TestNextEventAccountsForWholeDay(t *testing.T) {
	w := Window{Sunrise: 390, Sunset: 1110}
	span := w.Span()

	// Within daylight: elapsed since sunrise + remaining to sunset = span.
	for _, minute := range []int{390, 600, 750, 1000, 1109} {
		ev := nextEvent(minute, w)
		remaining := (w.Sunset - minute)
		if got := formatCountdown(remaining); ev.Countdown != got {
			t.Fatalf("minute %d: countdown %q, want %q", minute, ev.Countdown, got)
		}
		if (minute-w.Sunrise)+remaining != span {
			t.Fatalf("minute %d: daylight minutes do not sum to span", minute)
		}
	}

	// At night: elapsed since sunset + remaining to sunrise = 1440 - span.
	for _, minute := range []int{0, 200, 389, 1110, 1300, 1439} {
		ev := nextEvent(minute, w)
		var remaining, elapsed int
		if minute < w.Sunrise {
			remaining = w.Sunrise - minute
			elapsed = minute + minutesPerDay - w.Sunset
		} else {
			remaining = minutesPerDay - minute + w.Sunrise
			elapsed = minute - w.Sunset
		}
		if ev.Name != "Sunrise" {
			t.Fatalf("minute %d: expected sunrise next, got %s", minute, ev.Name)
		}
		if elapsed+remaining != minutesPerDay-span {
			t.Fatalf("minute %d: night minutes do not sum to 1440-span", minute)
		}
	}
}

// TestDeriveRainOverridesTip verifies the rain tip replaces any phase tip.
func TestDeriveRainOverridesTip(t *testing.T) {
	st := Derive(Inputs{
		Date:         mustDate(t, "2026-03-15"),
		Daily:        fixtureDaily(),
		Hourly:       fixtureHourly(95, 7),
		DragActive:   true,
		DragProgress: 0.5,
	})

	if st.Weather.Kind != KindRain {
		t.Fatalf("expected rain weather, got %s", st.Weather.Kind)
	}
	if st.Tip != rainTip {
		t.Errorf("expected rain tip override, got %q", st.Tip)
	}
}

// TestDeriveFallbacksKeepTotal verifies the calculator still produces a full
// bundle with no forecast data at all.
func TestDeriveFallbacksKeepTotal(t *testing.T) {
	st := Derive(Inputs{
		Date:             mustDate(t, "2026-03-15"),
		WallClockMinutes: 750,
	})

	if st.Window != DefaultWindow() {
		t.Fatalf("expected default window, got %+v", st.Window)
	}
	if st.Progress != 0.5 {
		t.Fatalf("expected progress 0.5 from the default window, got %v", st.Progress)
	}
	if st.Weather.Temperature != 20 {
		t.Errorf("expected fallback temperature 20, got %d", st.Weather.Temperature)
	}
	if st.UV.Level != "None" {
		t.Errorf("expected UV level None, got %q", st.UV.Level)
	}
	if st.Tip != noonDefaultTip {
		t.Errorf("expected generic noon tip at uv 0, got %q", st.Tip)
	}
}

// TestDeriveDeterministic verifies that identical inputs yield identical
// bundles.
func TestDeriveDeterministic(t *testing.T) {
	in := Inputs{
		Date:             mustDate(t, "2026-03-15"),
		Daily:            fixtureDaily(),
		Hourly:           fixtureHourly(61, 4.2),
		WallClockMinutes: 840,
	}

	first := Derive(in)
	second := Derive(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("derive is not deterministic:\n%+v\n%+v", first, second)
	}
}
