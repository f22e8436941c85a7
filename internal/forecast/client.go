package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches the daily sun table and hourly weather table from the
// Open-Meteo forecast API. No API key is required.
type Client struct {
	httpClient *http.Client
	baseURL    string
	days       int
	retry      retryConfig
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a forecast client covering the given horizon in days.
func NewClient(httpClient *http.Client, days int) *Client {
	if days <= 0 {
		days = 7
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultForecastURL,
		days:       days,
		retry:      defaultRetryConfig(),
		circuit:    newCircuit("open-meteo"),
	}
}

// SetBaseURL overrides the API endpoint (useful for testing).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Fetch retrieves a forecast bundle for the location: hourly temperature,
// weather code and UV index plus daily sunrise/sunset, all in the location's
// local time (timezone=auto).
func (c *Client) Fetch(ctx context.Context, loc Location) (Bundle, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
		values.Set("hourly", "temperature_2m,weathercode,uv_index")
		values.Set("daily", "sunrise,sunset")
		values.Set("timezone", "auto")
		values.Set("forecast_days", strconv.Itoa(c.days))

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchResilient(ctx, c.httpClient, c.retry, c.circuit, buildRequest)
	if err != nil {
		return Bundle{}, fmt.Errorf("open-meteo request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		UTCOffsetSeconds int         `json:"utc_offset_seconds"`
		Daily            DailyTable  `json:"daily"`
		Hourly           HourlyTable `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Bundle{}, fmt.Errorf("open-meteo response malformed: %w", err)
	}

	if err := checkAlignment(payload.Daily, payload.Hourly); err != nil {
		return Bundle{}, err
	}

	return Bundle{
		Location:         loc,
		FetchedAt:        time.Now().UTC(),
		UTCOffsetSeconds: payload.UTCOffsetSeconds,
		Daily:            payload.Daily,
		Hourly:           payload.Hourly,
	}, nil
}

// checkAlignment enforces the index-alignment invariant of the parallel
// arrays before a bundle enters the store.
func checkAlignment(daily DailyTable, hourly HourlyTable) error {
	if len(daily.Sunrise) != len(daily.Time) || len(daily.Sunset) != len(daily.Time) {
		return fmt.Errorf("misaligned daily table: %d dates, %d sunrises, %d sunsets",
			len(daily.Time), len(daily.Sunrise), len(daily.Sunset))
	}
	n := len(hourly.Time)
	if len(hourly.Temperature) != n || len(hourly.WeatherCode) != n || len(hourly.UVIndex) != n {
		return fmt.Errorf("misaligned hourly table: %d timestamps, %d temperatures, %d codes, %d uv values",
			n, len(hourly.Temperature), len(hourly.WeatherCode), len(hourly.UVIndex))
	}
	return nil
}
