package recommend

import (
	"fmt"
	"strings"

	"github.com/dkruglov/month-advisor/internal/weather"
)

// MonthScore is the computed discomfort score and rationale for one month.
// Lower scores are closer to the user's preferences.
type MonthScore struct {
	Profile     weather.MonthlyProfile `json:"profile"`
	Score       float64                `json:"score"`
	Explanation string                 `json:"explanation"`
}

// MonthName returns the name of the scored month.
func (s MonthScore) MonthName() string {
	return s.Profile.MonthName()
}

// rangePenalty is the distance from value to the inclusive [lower, upper]
// interval; zero when inside.
func rangePenalty(value, lower, upper float64) float64 {
	if value < lower {
		return lower - value
	}
	if value > upper {
		return value - upper
	}
	return 0
}

// precipPenalty applies a soft threshold: zero at or below it, a normalized
// overage above it. The normalization keeps rainy months from dominating the
// score just because mm totals are numerically large next to °C deltas.
func precipPenalty(totalMM, thresholdMM float64) float64 {
	if totalMM <= thresholdMM {
		return 0
	}
	divisor := thresholdMM
	if divisor < 1 {
		divisor = 1
	}
	return (totalMM - thresholdMM) / divisor
}

// ScoreMonth computes the weighted discomfort score for one month profile
// along with a three-clause explanation (temperature; dew point;
// precipitation).
func ScoreMonth(profile weather.MonthlyProfile, prefs Preferences) MonthScore {
	tempPen := rangePenalty(profile.AvgTemperatureC, prefs.TempMinC, prefs.TempMaxC)
	dewPen := rangePenalty(profile.AvgDewPointC, prefs.DewMinC, prefs.DewMaxC)
	precipPen := precipPenalty(profile.TotalPrecipitationMM, prefs.MaxPrecipitationMM)

	score := tempPen*prefs.TempWeight + dewPen*prefs.DewWeight + precipPen*prefs.PrecipWeight

	parts := make([]string, 0, 3)

	if tempPen == 0 {
		parts = append(parts, fmt.Sprintf("temperatures stay within your comfort range (%.1f°C)", profile.AvgTemperatureC))
	} else {
		parts = append(parts, fmt.Sprintf("temperatures are %.1f°C outside your preferred range", tempPen))
	}

	if dewPen == 0 {
		parts = append(parts, fmt.Sprintf("dew point aligns with your humidity tolerance (%.1f°C)", profile.AvgDewPointC))
	} else {
		parts = append(parts, fmt.Sprintf("dew point drifts %.1f°C from your ideal window", dewPen))
	}

	if precipPen == 0 {
		parts = append(parts, fmt.Sprintf("precipitation is below your %.0f mm allowance", prefs.MaxPrecipitationMM))
	} else {
		// The clause reports the raw mm overage, not the normalized penalty
		// that feeds the score. Intentional: mm is the unit the user reasons in.
		parts = append(parts, fmt.Sprintf("precipitation exceeds your allowance by %.1f mm",
			profile.TotalPrecipitationMM-prefs.MaxPrecipitationMM))
	}

	return MonthScore{
		Profile:     profile,
		Score:       score,
		Explanation: strings.Join(parts, "; "),
	}
}
