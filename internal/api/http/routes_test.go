package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/dkruglov/month-advisor/internal/recommend"
	"github.com/dkruglov/month-advisor/internal/weather"
	"github.com/dkruglov/month-advisor/internal/weather/providers"
)

type stubGeocoder struct {
	known map[string]weather.Location
}

func (g stubGeocoder) Name() string { return "stub-geocoder" }

func (g stubGeocoder) Geocode(ctx context.Context, place string) (weather.Location, error) {
	loc, ok := g.known[place]
	if !ok {
		return weather.Location{}, providers.ErrLocationNotFound
	}
	return loc, nil
}

type stubArchive struct {
	obs weather.DailyObservations
}

func (a stubArchive) Name() string { return "stub-archive" }

func (a stubArchive) FetchYear(ctx context.Context, loc weather.Location, year int) (weather.DailyObservations, error) {
	return a.obs, nil
}

type noopCache struct{}

func (noopCache) Save(weather.Location, int, weather.DailyObservations) {}

func (noopCache) Get(weather.Location, int) (weather.DailyObservations, bool) {
	return weather.DailyObservations{}, false
}

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	svc := recommend.NewService(
		stubGeocoder{known: map[string]weather.Location{
			"Lisbon": {Name: "Lisbon", Country: "Portugal", Latitude: 38.7, Longitude: -9.1},
		}},
		stubArchive{obs: weather.DailyObservations{
			Dates:           []string{"2023-03-15", "2023-07-15"},
			TemperatureC:    []float64{22, 30},
			DewPointC:       []float64{10, 20},
			PrecipitationMM: []float64{40, 120},
		}},
		noopCache{},
	)
	RegisterRoutes(app, svc, Defaults{
		Year:  2023,
		Top:   3,
		Prefs: recommend.DefaultPreferences(),
	})
	return app
}

// TestRecommendationsValidation verifies the query-parameter preconditions
// the scoring core relies on being enforced at the HTTP boundary.
func TestRecommendationsValidation(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name string
		url  string
	}{
		{"missing location", "/api/v1/recommendations"},
		{"inverted temp range", "/api/v1/recommendations?location=Lisbon&temp_min=30&temp_max=20"},
		{"inverted dew range", "/api/v1/recommendations?location=Lisbon&dew_min=18&dew_max=8"},
		{"negative threshold", "/api/v1/recommendations?location=Lisbon&max_precip_mm=-5"},
		{"non-positive top", "/api/v1/recommendations?location=Lisbon&top=0"},
		{"non-numeric weight", "/api/v1/recommendations?location=Lisbon&weight_temp=abc"},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", c.name, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestRecommendationsUnknownLocation(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?location=Atlantis", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestRecommendationsSuccess(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?location=Lisbon", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var rec recommend.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if rec.Location.Name != "Lisbon" || rec.Year != 2023 {
		t.Fatalf("unexpected recommendation header: %+v", rec)
	}
	if len(rec.Months) != 2 {
		t.Fatalf("expected 2 ranked months, got %d", len(rec.Months))
	}
	if rec.Months[0].Profile.Month != 3 || rec.Months[1].Profile.Month != 7 {
		t.Fatalf("expected ranked order [3 7], got [%d %d]",
			rec.Months[0].Profile.Month, rec.Months[1].Profile.Month)
	}
	if rec.Months[0].Score != 0 {
		t.Fatalf("expected March to score 0, got %v", rec.Months[0].Score)
	}
	if rec.Months[0].Explanation == "" {
		t.Fatal("expected a non-empty explanation")
	}
}
