// Package recommend scores aggregated month profiles against a user's
// comfort preferences and ranks them by lowest discomfort.
package recommend

// Preferences is the user-defined comfort envelope with per-dimension
// weights. Bounds are inclusive and must satisfy min <= max; validating
// that (and a non-negative precipitation threshold) is the caller's job.
type Preferences struct {
	TempMinC float64 `json:"tempMinC"`
	TempMaxC float64 `json:"tempMaxC"`
	DewMinC  float64 `json:"dewMinC"`
	DewMaxC  float64 `json:"dewMaxC"`

	// MaxPrecipitationMM is a soft threshold on total monthly precipitation.
	MaxPrecipitationMM float64 `json:"maxPrecipitationMm"`

	TempWeight   float64 `json:"tempWeight"`
	DewWeight    float64 `json:"dewWeight"`
	PrecipWeight float64 `json:"precipWeight"`
}

// DefaultPreferences returns a mild-climate comfort envelope: daily mean
// temperature 18-26°C, dew point 8-16°C, at most 90 mm of monthly rain.
func DefaultPreferences() Preferences {
	return Preferences{
		TempMinC:           18,
		TempMaxC:           26,
		DewMinC:            8,
		DewMaxC:            16,
		MaxPrecipitationMM: 90,
		TempWeight:         1.0,
		DewWeight:          1.0,
		PrecipWeight:       0.6,
	}
}
