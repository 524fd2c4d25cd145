package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkruglov/month-advisor/internal/weather"
	"github.com/kelvins/geocoder"
)

// GoogleGeocoder implements weather.Geocoder on top of the Google Maps
// geocoding API. Requires an API key; used instead of Open-Meteo when one is
// configured.
type GoogleGeocoder struct {
	name string
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	// The kelvins/geocoder key is package-level state.
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{name: "google-geocoding"}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, place string) (weather.Location, error) {
	if place == "" {
		return weather.Location{}, fmt.Errorf("place name must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return weather.Location{}, err
	}

	// Accept "City" or "City, Country" the way the HTTP surface documents it.
	addr := geocoder.Address{City: place}
	if city, country, ok := strings.Cut(place, ","); ok {
		addr.City = strings.TrimSpace(city)
		addr.Country = strings.TrimSpace(country)
	}

	loc, err := geocoder.Geocoding(addr)
	if err != nil {
		return weather.Location{}, fmt.Errorf("%w: %q: %v", ErrLocationNotFound, place, err)
	}

	return weather.Location{
		Name:      addr.City,
		Country:   addr.Country,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, nil
}
