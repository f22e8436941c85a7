package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/solarsync/solar-sync/internal/forecast"
	"github.com/solarsync/solar-sync/internal/insights"
	"github.com/solarsync/solar-sync/internal/prefs"
	"github.com/solarsync/solar-sync/internal/solar"
	"github.com/solarsync/solar-sync/internal/store"
	"github.com/solarsync/solar-sync/internal/sun"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// Deps carries everything the HTTP handlers need.
type Deps struct {
	Forecast        *forecast.Service
	Session         *solar.Session
	Drag            *DragController
	Prefs           *prefs.Store
	Geo             *forecast.GeocodingClient
	DefaultLocation forecast.Location

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps *Deps) {
	if deps.Drag == nil {
		deps.Drag = NewDragController(deps.Session)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		_, hasForecast := deps.Forecast.Latest()
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     "solar-sync",
			"hasForecast": hasForecast,
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/state", func(c *fiber.Ctx) error {
		return handleState(c, deps)
	})

	v1.Post("/timeline/pointer", func(c *fiber.Ctx) error {
		return handlePointer(c, deps)
	})

	v1.Post("/timeline/drag/start", func(c *fiber.Ctx) error {
		deps.Drag.Start()
		return c.JSON(fiber.Map{"dragging": true})
	})

	v1.Post("/timeline/drag/move", func(c *fiber.Ctx) error {
		var req struct {
			Progress float64 `json:"progress"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid drag payload")
		}
		deps.Drag.Move(req.Progress)
		return c.JSON(fiber.Map{
			"progress": req.Progress,
			"dragging": deps.Session.Active(),
		})
	})

	v1.Post("/timeline/drag/end", func(c *fiber.Ctx) error {
		deps.Drag.End()
		return c.JSON(fiber.Map{"dragging": false})
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		return handleForecast(c, deps)
	})

	v1.Get("/forecast/history", func(c *fiber.Ctx) error {
		return handleForecastHistory(c, deps)
	})

	v1.Get("/insights", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"insights":   insights.Catalog(),
			"didYouKnow": insights.DidYouKnow,
		})
	})

	v1.Get("/preferences", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"preferences": deps.Prefs.Current(),
			"skinTypes":   prefs.SkinTypes,
			"chronotypes": prefs.Chronotypes,
		})
	})

	v1.Put("/preferences", func(c *fiber.Ctx) error {
		return handleSavePreferences(c, deps)
	})

	v1.Get("/locations/search", func(c *fiber.Ctx) error {
		return handleLocationSearch(c, deps)
	})
}

// handleState derives the display bundle for the active location. The
// optional date query selects a forecast day; the optional progress query
// simulates a timeline position without touching the live drag session.
func handleState(c *fiber.Ctx, deps *Deps) error {
	bundle, _ := deps.Forecast.Latest()
	local := bundle.LocalNow(deps.now())

	date := local
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse(dateLayout, q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date; use YYYY-MM-DD")
		}
		date = parsed
	}

	in := solar.Inputs{
		Date:             date,
		Daily:            bundle.Daily,
		Hourly:           bundle.Hourly,
		WallClockMinutes: local.Hour()*60 + local.Minute(),
	}

	simulating := false
	if q := c.Query("progress"); q != "" {
		p, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid progress value")
		}
		in.DragActive = true
		in.DragProgress = p
		simulating = true
	} else if active, p := deps.Session.Snapshot(); active {
		in.DragActive = true
		in.DragProgress = p
		simulating = true
	}

	state := solar.Derive(in)

	return c.JSON(fiber.Map{
		"location":   deps.Forecast.ActiveLocation(),
		"date":       date.Format(dateLayout),
		"dateLabel":  date.Format("Monday, Jan 2"),
		"simulating": simulating,
		"state":      state,
	})
}

// pointerRequest is a pointer coordinate in rendered widget pixels.
type pointerRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

func handlePointer(c *fiber.Ctx, deps *Deps) error {
	var req pointerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pointer payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	progress := solar.MapPointer(req.X, req.Y, solar.Bounds{Width: req.Width, Height: req.Height})
	deps.Session.Move(progress)

	return c.JSON(fiber.Map{
		"progress": progress,
		"dragging": deps.Session.Active(),
	})
}

// handleForecast lists the fetched horizon day by day with the solar events
// for each date.
func handleForecast(c *fiber.Ctx, deps *Deps) error {
	bundle, ok := deps.Forecast.Latest()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no forecast data available")
	}

	local := bundle.LocalNow(deps.now())
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	offset := time.Duration(bundle.UTCOffsetSeconds) * time.Second
	loc := bundle.Location

	days := make([]fiber.Map, 0, len(bundle.Daily.Time))
	for _, dateStr := range bundle.Daily.Time {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}

		label := date.Format("Mon, Jan 2")
		switch {
		case date.Equal(today):
			label = "Today"
		case date.Equal(today.AddDate(0, 0, 1)):
			label = "Tomorrow"
		}

		window := solar.ResolveWindow(date, bundle.Daily)
		span := window.Span()

		ev := sun.EventsFor(date.Add(12*time.Hour), loc.Latitude, loc.Longitude)

		days = append(days, fiber.Map{
			"date":       dateStr,
			"label":      label,
			"sunrise":    formatMinutes(window.Sunrise),
			"sunset":     formatMinutes(window.Sunset),
			"dayLength":  fmt.Sprintf("%dh %dm", span/60, span%60),
			"solarNoon":  ev.SolarNoon.UTC().Add(offset).Format("15:04"),
			"goldenHour": ev.GoldenHour.UTC().Add(offset).Format("15:04"),
		})
	}

	return c.JSON(fiber.Map{
		"location": loc,
		"days":     days,
	})
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// historyQuery holds query parameters for the bundle-history endpoint.
type historyQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}

// handleForecastHistory lists the bundles fetched for the active location in
// a time range, oldest first.
func handleForecastHistory(c *fiber.Ctx, deps *Deps) error {
	var req historyQuery
	if err := req.bind(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bundles, err := deps.Forecast.History(req.From, req.To)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no forecast history for requested range")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast history")
	}

	return c.JSON(fiber.Map{
		"location": deps.Forecast.ActiveLocation(),
		"from":     req.From,
		"to":       req.To,
		"bundles":  bundles,
	})
}

// handleSavePreferences persists new preferences and realigns the tracked
// location: a manual saved location takes over, precise mode reverts to the
// default. The forecast refetch runs in the background.
func handleSavePreferences(c *fiber.Ctx, deps *Deps) error {
	var p prefs.Preferences
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid preferences payload")
	}

	saved, err := deps.Prefs.Save(p)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	target := deps.DefaultLocation
	if !saved.PreciseLocation && saved.SavedLocation != nil {
		target = forecast.Location{
			ID:          saved.SavedLocation.ID,
			Name:        saved.SavedLocation.Name,
			Latitude:    saved.SavedLocation.Latitude,
			Longitude:   saved.SavedLocation.Longitude,
			CountryCode: saved.SavedLocation.CountryCode,
		}
	}

	if target.Key() != deps.Forecast.ActiveLocation().Key() {
		deps.Forecast.SetActiveLocation(target)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := deps.Forecast.Refresh(ctx); err != nil {
				log.Printf("httpapi: refresh after location change failed: %v", err)
			}
		}()
	}

	return c.JSON(fiber.Map{"preferences": saved})
}

// searchQuery holds the city search parameters.
type searchQuery struct {
	Query string `validate:"required,min=2"`
}

func handleLocationSearch(c *fiber.Ctx, deps *Deps) error {
	q := searchQuery{Query: c.Query("q")}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "query must be at least 2 characters")
	}

	places, err := deps.Geo.Search(c.Context(), q.Query)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "location search unavailable")
	}

	return c.JSON(fiber.Map{"results": places})
}
