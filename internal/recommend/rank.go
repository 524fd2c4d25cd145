package recommend

import (
	"sort"

	"github.com/dkruglov/month-advisor/internal/weather"
)

// RankMonths scores every profile and orders the results ascending by score
// (best month first). The sort is stable, so equal scores keep the input
// order; with month-ascending input that means ties resolve to earlier
// calendar months. Truncating to a top-N view is the caller's concern.
func RankMonths(profiles []weather.MonthlyProfile, prefs Preferences) []MonthScore {
	scored := make([]MonthScore, 0, len(profiles))
	for _, p := range profiles {
		scored = append(scored, ScoreMonth(p, prefs))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored
}
