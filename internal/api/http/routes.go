package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dkruglov/month-advisor/internal/recommend"
	"github.com/dkruglov/month-advisor/internal/weather/providers"
)

var validate = validator.New()

// Defaults carries the config-derived fallbacks for omitted query params.
type Defaults struct {
	Year  int
	Top   int
	Prefs recommend.Preferences
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *recommend.Service, defaults Defaults) {
	v1 := app.Group("/api/v1")

	v1.Get("/recommendations", func(c *fiber.Ctx) error {
		var req recommendationQuery
		if err := req.bind(c, defaults); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.Recommend(c.UserContext(), req.toQuery())
		if err != nil {
			switch {
			case errors.Is(err, providers.ErrLocationNotFound):
				return fiber.NewError(fiber.StatusNotFound, "location not found; try a broader city name")
			case errors.Is(err, recommend.ErrNoObservations):
				return fiber.NewError(fiber.StatusNotFound, "no weather data for that location and year")
			default:
				return fiber.NewError(fiber.StatusBadGateway, "failed to compute recommendations")
			}
		}

		return c.JSON(rec)
	})
}

// recommendationQuery holds the query parameters for the recommendations
// endpoint. Bound preference values are validated here so the scoring core
// can assume well-formed input.
type recommendationQuery struct {
	Location     string  `validate:"required"`
	Year         int     `validate:"gte=1940"`
	Top          int     `validate:"gte=1"`
	TempMin      float64 `validate:"ltefield=TempMax"`
	TempMax      float64
	DewMin       float64 `validate:"ltefield=DewMax"`
	DewMax       float64
	MaxPrecip    float64 `validate:"gte=0"`
	WeightTemp   float64
	WeightDew    float64
	WeightPrecip float64
}

func (r *recommendationQuery) bind(c *fiber.Ctx, defaults Defaults) error {
	r.Location = c.Query("location")

	var err error
	if r.Year, err = queryInt(c, "year", defaults.Year); err != nil {
		return err
	}
	if r.Top, err = queryInt(c, "top", defaults.Top); err != nil {
		return err
	}

	p := defaults.Prefs
	floats := []struct {
		name string
		dst  *float64
		def  float64
	}{
		{"temp_min", &r.TempMin, p.TempMinC},
		{"temp_max", &r.TempMax, p.TempMaxC},
		{"dew_min", &r.DewMin, p.DewMinC},
		{"dew_max", &r.DewMax, p.DewMaxC},
		{"max_precip_mm", &r.MaxPrecip, p.MaxPrecipitationMM},
		{"weight_temp", &r.WeightTemp, p.TempWeight},
		{"weight_dew", &r.WeightDew, p.DewWeight},
		{"weight_precip", &r.WeightPrecip, p.PrecipWeight},
	}
	for _, f := range floats {
		if *f.dst, err = queryFloat(c, f.name, f.def); err != nil {
			return err
		}
	}
	return nil
}

func (r recommendationQuery) toQuery() recommend.Query {
	return recommend.Query{
		Place: r.Location,
		Year:  r.Year,
		Top:   r.Top,
		Prefs: recommend.Preferences{
			TempMinC:           r.TempMin,
			TempMaxC:           r.TempMax,
			DewMinC:            r.DewMin,
			DewMaxC:            r.DewMax,
			MaxPrecipitationMM: r.MaxPrecip,
			TempWeight:         r.WeightTemp,
			DewWeight:          r.WeightDew,
			PrecipWeight:       r.WeightPrecip,
		},
	}
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func queryFloat(c *fiber.Ctx, name string, def float64) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return f, nil
}
