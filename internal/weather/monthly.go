package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLengthMismatch is returned when the four daily slices disagree in length.
var ErrLengthMismatch = errors.New("daily observation slices have mismatched lengths")

// monthAccumulator collects running sums for one calendar month.
type monthAccumulator struct {
	tempSum   float64
	dewSum    float64
	precipSum float64
	count     int
}

// AggregateDaily reduces a year of daily observations into per-month profiles.
// Temperature and dew point are averaged over each month's days; precipitation
// is summed. Months without a single observation day are omitted. The result
// is ordered by month ascending.
func AggregateDaily(obs DailyObservations) ([]MonthlyProfile, error) {
	n := obs.Days()
	if len(obs.TemperatureC) != n || len(obs.DewPointC) != n || len(obs.PrecipitationMM) != n {
		return nil, fmt.Errorf("%w: dates=%d temps=%d dewPoints=%d precipitation=%d",
			ErrLengthMismatch, n, len(obs.TemperatureC), len(obs.DewPointC), len(obs.PrecipitationMM))
	}

	// Fixed 12-slot accumulator; index 0 is month 1. Makes "month with zero
	// days" an explicit state instead of an absent map key.
	var months [12]monthAccumulator

	for i := 0; i < n; i++ {
		m, err := parseMonth(obs.Dates[i])
		if err != nil {
			return nil, err
		}
		acc := &months[m-1]
		acc.tempSum += obs.TemperatureC[i]
		acc.dewSum += obs.DewPointC[i]
		acc.precipSum += obs.PrecipitationMM[i]
		acc.count++
	}

	var profiles []MonthlyProfile
	for m, acc := range months {
		if acc.count == 0 {
			continue
		}
		profiles = append(profiles, MonthlyProfile{
			Month:                m + 1,
			AvgTemperatureC:      acc.tempSum / float64(acc.count),
			AvgDewPointC:         acc.dewSum / float64(acc.count),
			TotalPrecipitationMM: acc.precipSum,
			ObservationDays:      acc.count,
		})
	}
	return profiles, nil
}

// parseMonth extracts the month from an ISO-style date string, i.e. the
// second "-"-delimited field of "2023-07-15".
func parseMonth(date string) (int, error) {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed date %q: no month field", date)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("malformed date %q: invalid month %q", date, parts[1])
	}
	return m, nil
}
