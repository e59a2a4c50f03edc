package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"planet-weather/internal/api/models"
	"planet-weather/internal/forecast"
	"planet-weather/internal/model"
	"planet-weather/internal/simulation"

	"github.com/agnivade/levenshtein"
	"github.com/gin-gonic/gin"
)

// WeatherHandler serves read-only queries over the published simulation run.
type WeatherHandler struct {
	store *forecast.Store
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(store *forecast.Store) *WeatherHandler {
	return &WeatherHandler{store: store}
}

// Summary handles GET /api/v1/weather/summary
func (h *WeatherHandler) Summary(c *gin.Context) {
	res, ok := h.result(c)
	if !ok {
		return
	}

	counts := res.Counts()
	resp := models.SummaryResponse{
		TotalDays: res.TotalDays(),
		Drought:   counts.Drought,
		Rain:      counts.Rain,
		Optimal:   counts.Optimal,
		Undefined: counts.Undefined,
	}
	if d, ok := res.RainiestDay(); ok {
		rec := toDayRecord(d)
		resp.RainiestDay = &rec
	}
	c.JSON(http.StatusOK, resp)
}

// Day handles GET /api/v1/weather/days/:day
func (h *WeatherHandler) Day(c *gin.Context) {
	var req models.DayRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DAY",
				Message: "day must be an integer",
			},
		})
		return
	}

	res, ok := h.result(c)
	if !ok {
		return
	}

	d, err := res.DayByIndex(req.Day)
	if err != nil {
		if errors.Is(err, simulation.ErrDayNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "DAY_NOT_FOUND",
					Message: "No record for the requested day",
					Details: map[string]interface{}{
						"day":       req.Day,
						"first_day": 1,
						"last_day":  res.TotalDays(),
					},
				},
			})
			return
		}
		panic(err)
	}

	c.JSON(http.StatusOK, toForecast(d))
}

// ByCategory handles GET /api/v1/weather/categories/:category
func (h *WeatherHandler) ByCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_CATEGORY",
				Message: fmt.Sprintf("Weather %q does not exist", req.Category),
				Details: map[string]interface{}{
					"did_you_mean": closestCategory(req.Category),
					"categories":   model.Categories,
				},
			},
		})
		return
	}

	res, ok := h.result(c)
	if !ok {
		return
	}

	days, err := res.DaysByCategory(cat)
	if err != nil {
		panic(err)
	}

	out := make([]models.ForecastResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toForecast(d))
	}
	c.JSON(http.StatusOK, models.CategoryResponse{
		Weather: string(cat),
		Count:   len(out),
		Days:    out,
	})
}

// result writes 503 and returns false until the run is published.
func (h *WeatherHandler) result(c *gin.Context) (*simulation.Result, bool) {
	res, ok := h.store.Load()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_READY",
				Message: "Simulation has not finished yet",
			},
		})
		return nil, false
	}
	return res, true
}

// closestCategory suggests the category name with the smallest edit distance.
func closestCategory(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, cat := range model.Categories {
		d := levenshtein.ComputeDistance(name, string(cat))
		if bestDist < 0 || d < bestDist {
			best, bestDist = string(cat), d
		}
	}
	return best
}

func toForecast(d simulation.Day) models.ForecastResponse {
	return models.ForecastResponse{
		Weather: string(d.Category),
		Day:     toDayRecord(d),
	}
}

func toDayRecord(d simulation.Day) models.DayRecord {
	bodies := d.Bodies()
	positions := make([]models.PositionRecord, len(bodies))
	for i, b := range bodies {
		positions[i] = models.PositionRecord{
			Body:  b.Body,
			Angle: b.Angle,
			X:     b.X,
			Y:     b.Y,
		}
	}
	return models.DayRecord{
		Day:       d.Index,
		Perimeter: d.Perimeter,
		Positions: positions,
	}
}
