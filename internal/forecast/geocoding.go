package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	// FallbackLocationName is shown when no geocoding backend can name the
	// coordinates; the display must never be left blank.
	FallbackLocationName = "Current Location"
)

// GeocodingClient searches city names through the Open-Meteo geocoding API
// and resolves display names for raw coordinates through the Google
// geocoding API when a key is configured.
type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	retry      retryConfig
	circuit    *gobreaker.CircuitBreaker
	hasReverse bool
}

// NewGeocodingClient creates a geocoding client. googleAPIKey may be empty;
// reverse lookups then fall back to FallbackLocationName.
func NewGeocodingClient(httpClient *http.Client, googleAPIKey string) *GeocodingClient {
	if googleAPIKey != "" {
		geocoder.ApiKey = googleAPIKey
	}
	return &GeocodingClient{
		httpClient: httpClient,
		baseURL:    defaultGeocodingURL,
		retry:      defaultRetryConfig(),
		circuit:    newCircuit("open-meteo-geocoding"),
		hasReverse: googleAPIKey != "",
	}
}

// SetBaseURL overrides the search endpoint (useful for testing).
func (g *GeocodingClient) SetBaseURL(baseURL string) {
	g.baseURL = baseURL
}

// Search returns up to 10 places matching the query.
func (g *GeocodingClient) Search(ctx context.Context, query string) ([]Location, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "10")
		values.Set("language", "en")
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchResilient(ctx, g.httpClient, g.retry, g.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("geocoding search failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name        string  `json:"name"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			CountryCode string  `json:"country_code"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoding response malformed: %w", err)
	}

	places := make([]Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		name := r.Name
		if r.CountryCode != "" {
			name = r.Name + ", " + r.CountryCode
		}
		places = append(places, Location{
			Name:        name,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			CountryCode: r.CountryCode,
		})
	}
	return places, nil
}

// ReverseName resolves a human-readable name for the coordinates. It falls
// back to FallbackLocationName when no backend is configured or the lookup
// fails; naming a place is display convenience, never an error.
func (g *GeocodingClient) ReverseName(lat, lon float64) string {
	if !g.hasReverse {
		return FallbackLocationName
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{Latitude: lat, Longitude: lon})
	if err != nil || len(addresses) == 0 {
		return FallbackLocationName
	}

	a := addresses[0]
	city := a.City
	if city == "" {
		city = a.District
	}
	if city == "" {
		return FallbackLocationName
	}
	if a.Country != "" {
		return city + ", " + a.Country
	}
	return city
}
