package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dkruglov/month-advisor/internal/weather"
)

// ErrNoObservations is returned when the archive yields no daily data for
// the requested location and year.
var ErrNoObservations = errors.New("no weather observations for location/year")

// Service orchestrates the full recommendation pipeline: geocode the place,
// fetch (or reuse) the year of daily observations, aggregate into monthly
// profiles, and rank them against the caller's preferences.
type Service struct {
	geocoder weather.Geocoder
	archive  weather.Archive
	cache    weather.Cache
}

// NewService creates a new Service.
func NewService(geocoder weather.Geocoder, archive weather.Archive, cache weather.Cache) *Service {
	return &Service{
		geocoder: geocoder,
		archive:  archive,
		cache:    cache,
	}
}

// Query describes one recommendation request.
type Query struct {
	Place string
	Year  int
	Top   int // 0 means all months
	Prefs Preferences
}

// Recommendation is the ranked result for one place and year.
type Recommendation struct {
	Location weather.Location `json:"location"`
	Year     int              `json:"year"`
	Months   []MonthScore     `json:"months"`
}

// Recommend runs the pipeline for one query. The ranked months come back
// ascending by discomfort score, truncated to q.Top when it is positive.
func (s *Service) Recommend(ctx context.Context, q Query) (Recommendation, error) {
	loc, err := s.geocoder.Geocode(ctx, q.Place)
	if err != nil {
		return Recommendation{}, fmt.Errorf("geocode %q: %w", q.Place, err)
	}

	obs, err := s.observationsFor(ctx, loc, q.Year)
	if err != nil {
		return Recommendation{}, err
	}

	profiles, err := weather.AggregateDaily(obs)
	if err != nil {
		return Recommendation{}, fmt.Errorf("aggregate %s/%d: %w", loc.Key(), q.Year, err)
	}
	if len(profiles) == 0 {
		return Recommendation{}, fmt.Errorf("%w: %s/%d", ErrNoObservations, loc.Key(), q.Year)
	}

	ranked := RankMonths(profiles, q.Prefs)
	if q.Top > 0 && q.Top < len(ranked) {
		ranked = ranked[:q.Top]
	}

	return Recommendation{
		Location: loc,
		Year:     q.Year,
		Months:   ranked,
	}, nil
}

// Prewarm resolves a place and pulls its year of observations into the
// cache so the first user request does not pay the archive round trip.
func (s *Service) Prewarm(ctx context.Context, place string, year int) error {
	loc, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		return fmt.Errorf("geocode %q: %w", place, err)
	}
	_, err = s.observationsFor(ctx, loc, year)
	return err
}

// observationsFor returns the year of daily observations for a location,
// serving from the cache when possible.
func (s *Service) observationsFor(ctx context.Context, loc weather.Location, year int) (weather.DailyObservations, error) {
	if obs, ok := s.cache.Get(loc, year); ok {
		return obs, nil
	}

	obs, err := s.archive.FetchYear(ctx, loc, year)
	if err != nil {
		return weather.DailyObservations{}, fmt.Errorf("fetch %s/%d from %s: %w", loc.Key(), year, s.archive.Name(), err)
	}

	log.Printf("fetched %d observation days for %s/%d from %s", obs.Days(), loc.Key(), year, s.archive.Name())
	s.cache.Save(loc, year, obs)
	return obs, nil
}
