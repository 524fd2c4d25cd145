package weather

import "context"

// Geocoder resolves a free-form place name to coordinates.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, place string) (Location, error)
}

// Archive fetches one full year of daily historical observations for a
// coordinate pair.
type Archive interface {
	Name() string
	FetchYear(ctx context.Context, loc Location, year int) (DailyObservations, error)
}

// Cache is the contract the in-memory observation cache (and any future
// persistent one) must satisfy. Historical years are immutable, so cached
// entries never need invalidation beyond retention.
type Cache interface {
	Save(loc Location, year int, obs DailyObservations)
	Get(loc Location, year int) (DailyObservations, bool)
}
