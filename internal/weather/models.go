package weather

import (
	"fmt"
	"time"
)

// Location represents a geocoded place for which we analyze weather history.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this location in caches.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f:%.4f", l.Latitude, l.Longitude)
}

// DailyObservations holds one year of daily weather history as parallel
// slices: index i describes the same day across all four slices.
type DailyObservations struct {
	Dates           []string  `json:"dates"`
	TemperatureC    []float64 `json:"temperatureC"`
	DewPointC       []float64 `json:"dewPointC"`
	PrecipitationMM []float64 `json:"precipitationMm"`
}

// Days returns the number of observation days.
func (d DailyObservations) Days() int {
	return len(d.Dates)
}

// MonthlyProfile is the aggregated weather signal for one calendar month.
// Months with zero observation days are never materialized.
type MonthlyProfile struct {
	Month                int     `json:"month"` // 1-12
	AvgTemperatureC      float64 `json:"avgTemperatureC"`
	AvgDewPointC         float64 `json:"avgDewPointC"`
	TotalPrecipitationMM float64 `json:"totalPrecipitationMm"`
	ObservationDays      int     `json:"observationDays"`
}

// MonthName returns the English month name ("January" .. "December").
func (p MonthlyProfile) MonthName() string {
	return time.Month(p.Month).String()
}
