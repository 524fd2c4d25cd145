package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkruglov/month-advisor/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenMeteoArchive implements weather.Archive against Open-Meteo's
// historical archive API, fetching daily means for a full calendar year.
type OpenMeteoArchive struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoArchive(client *http.Client) *OpenMeteoArchive {
	return &OpenMeteoArchive{
		name:    "openmeteo-archive",
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: defaultBreaker("openmeteo-archive"),
	}
}

func (a *OpenMeteoArchive) Name() string {
	return a.name
}

func (a *OpenMeteoArchive) FetchYear(ctx context.Context, loc weather.Location, year int) (weather.DailyObservations, error) {
	if year <= 0 {
		return weather.DailyObservations{}, fmt.Errorf("year must be positive, got %d", year)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
		values.Set("start_date", fmt.Sprintf("%04d-01-01", year))
		values.Set("end_date", fmt.Sprintf("%04d-12-31", year))
		values.Add("daily", "temperature_2m_mean")
		values.Add("daily", "dew_point_2m_mean")
		values.Add("daily", "precipitation_sum")
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", a.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, a.httpCfg, a.circuit, buildRequest)
	if err != nil {
		return weather.DailyObservations{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time              []string  `json:"time"`
			Temperature2mMean []float64 `json:"temperature_2m_mean"`
			DewPoint2mMean    []float64 `json:"dew_point_2m_mean"`
			PrecipitationSum  []float64 `json:"precipitation_sum"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.DailyObservations{}, err
	}

	return weather.DailyObservations{
		Dates:           payload.Daily.Time,
		TemperatureC:    payload.Daily.Temperature2mMean,
		DewPointC:       payload.Daily.DewPoint2mMean,
		PrecipitationMM: payload.Daily.PrecipitationSum,
	}, nil
}
