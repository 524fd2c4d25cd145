package weather

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// TestAggregateOneDayPerMonth verifies that a year with a single observation
// day per month yields profiles whose averages equal the input values exactly.
func TestAggregateOneDayPerMonth(t *testing.T) {
	var obs DailyObservations
	for m := 1; m <= 12; m++ {
		obs.Dates = append(obs.Dates, fmt.Sprintf("2023-%02d-15", m))
		obs.TemperatureC = append(obs.TemperatureC, float64(m))
		obs.DewPointC = append(obs.DewPointC, float64(m)/2)
		obs.PrecipitationMM = append(obs.PrecipitationMM, float64(m)*10)
	}

	profiles, err := AggregateDaily(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 12 {
		t.Fatalf("expected 12 profiles, got %d", len(profiles))
	}

	for i, p := range profiles {
		m := i + 1
		if p.Month != m {
			t.Fatalf("profile %d: expected month %d, got %d", i, m, p.Month)
		}
		if p.ObservationDays != 1 {
			t.Fatalf("month %d: expected 1 observation day, got %d", m, p.ObservationDays)
		}
		if p.AvgTemperatureC != float64(m) {
			t.Fatalf("month %d: expected avg temp %v, got %v", m, float64(m), p.AvgTemperatureC)
		}
		if p.AvgDewPointC != float64(m)/2 {
			t.Fatalf("month %d: expected avg dew point %v, got %v", m, float64(m)/2, p.AvgDewPointC)
		}
		if p.TotalPrecipitationMM != float64(m)*10 {
			t.Fatalf("month %d: expected precip %v, got %v", m, float64(m)*10, p.TotalPrecipitationMM)
		}
	}
}

// TestAggregateAveragesAndSums checks that multi-day months average
// temperature and dew point but sum precipitation.
func TestAggregateAveragesAndSums(t *testing.T) {
	obs := DailyObservations{
		Dates:           []string{"2023-07-01", "2023-07-02", "2023-07-03"},
		TemperatureC:    []float64{20, 24, 28},
		DewPointC:       []float64{10, 12, 14},
		PrecipitationMM: []float64{1.5, 0, 3.5},
	}

	profiles, err := AggregateDaily(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}

	p := profiles[0]
	if p.Month != 7 || p.ObservationDays != 3 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if math.Abs(p.AvgTemperatureC-24) > 1e-9 {
		t.Fatalf("expected avg temp 24, got %v", p.AvgTemperatureC)
	}
	if math.Abs(p.AvgDewPointC-12) > 1e-9 {
		t.Fatalf("expected avg dew point 12, got %v", p.AvgDewPointC)
	}
	if math.Abs(p.TotalPrecipitationMM-5) > 1e-9 {
		t.Fatalf("expected total precip 5, got %v", p.TotalPrecipitationMM)
	}
}

// TestAggregateOmitsEmptyMonths verifies that months without observations are
// omitted rather than emitted with synthetic zeros.
func TestAggregateOmitsEmptyMonths(t *testing.T) {
	obs := DailyObservations{
		Dates:           []string{"2023-12-25", "2023-01-10", "2023-06-05"},
		TemperatureC:    []float64{2, 5, 22},
		DewPointC:       []float64{0, 1, 14},
		PrecipitationMM: []float64{10, 20, 30},
	}

	profiles, err := AggregateDaily(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 6, 12}
	if len(profiles) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(profiles))
	}
	for i, m := range want {
		if profiles[i].Month != m {
			t.Fatalf("expected months %v, got profile %d with month %d", want, i, profiles[i].Month)
		}
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	profiles, err := AggregateDaily(DailyObservations{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected no profiles, got %d", len(profiles))
	}
}

func TestAggregateLengthMismatch(t *testing.T) {
	obs := DailyObservations{
		Dates:           []string{"2023-01-01", "2023-01-02"},
		TemperatureC:    []float64{1, 2},
		DewPointC:       []float64{0},
		PrecipitationMM: []float64{0, 0},
	}

	_, err := AggregateDaily(obs)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestAggregateMalformedDate(t *testing.T) {
	for _, date := range []string{"20230101", "2023-13-01", "2023-xx-01", ""} {
		obs := DailyObservations{
			Dates:           []string{date},
			TemperatureC:    []float64{1},
			DewPointC:       []float64{1},
			PrecipitationMM: []float64{1},
		}
		if _, err := AggregateDaily(obs); err == nil {
			t.Fatalf("expected error for date %q", date)
		}
	}
}
