package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkruglov/month-advisor/internal/weather"
	"github.com/sony/gobreaker"
)

// ErrLocationNotFound is returned when the geocoding API has no match for
// the requested place name.
var ErrLocationNotFound = errors.New("location not found")

// OpenMeteoGeocoder implements weather.Geocoder against Open-Meteo's free
// geocoding API. No API key required.
type OpenMeteoGeocoder struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoGeocoder(client *http.Client) *OpenMeteoGeocoder {
	return &OpenMeteoGeocoder{
		name:    "openmeteo-geocoding",
		baseURL: "https://geocoding-api.open-meteo.com/v1/search",
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: defaultBreaker("openmeteo-geocoding"),
	}
}

func (g *OpenMeteoGeocoder) Name() string {
	return g.name
}

func (g *OpenMeteoGeocoder) Geocode(ctx context.Context, place string) (weather.Location, error) {
	if place == "" {
		return weather.Location{}, fmt.Errorf("place name must not be empty")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", place)
		values.Set("count", "1")
		values.Set("language", "en")
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, g.httpCfg, g.circuit, buildRequest)
	if err != nil {
		return weather.Location{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Location{}, err
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, place)
	}

	best := payload.Results[0]
	return weather.Location{
		Name:      best.Name,
		Country:   best.Country,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}
