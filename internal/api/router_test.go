package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"planet-weather/internal/api/models"
	"planet-weather/internal/forecast"
	"planet-weather/internal/observability"
	"planet-weather/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const horizon = 120

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, run bool, opts Options) (*gin.Engine, *forecast.Store) {
	t.Helper()
	store := forecast.NewStore(simulation.NewDefault(), horizon, nil, nil)
	if run {
		_, err := store.Run()
		require.NoError(t, err)
	}
	opts.Store = store
	return NewRouter(opts), store
}

func get(t *testing.T, r http.Handler, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr
}

func TestSummary(t *testing.T) {
	r, store := newTestRouter(t, true, Options{})
	res, _ := store.Load()

	var body models.SummaryResponse
	rr := get(t, r, "/api/v1/weather/summary", &body)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, horizon, body.TotalDays)
	assert.Equal(t, horizon, body.Drought+body.Rain+body.Optimal+body.Undefined)
	assert.Equal(t, res.Counts().Rain, body.Rain)

	if best, ok := res.RainiestDay(); ok {
		require.NotNil(t, body.RainiestDay)
		assert.Equal(t, best.Index, body.RainiestDay.Day)
	} else {
		assert.Nil(t, body.RainiestDay)
	}
}

func TestSummaryAlwaysHasAllCategories(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	var raw map[string]interface{}
	get(t, r, "/api/v1/weather/summary", &raw)
	for _, key := range []string{"drought", "rain", "optimal", "undefined", "rainiest_day"} {
		assert.Contains(t, raw, key)
	}
}

func TestDay(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	var body models.ForecastResponse
	rr := get(t, r, "/api/v1/weather/days/90", &body)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "DROUGHT", body.Weather)
	assert.Equal(t, 90, body.Day.Day)
	assert.Equal(t, []models.PositionRecord{
		{Body: "BETASOIDE", Angle: 90, X: 0, Y: 2000},
		{Body: "FERENGI", Angle: -90, X: 0, Y: -500},
		{Body: "VULCANO", Angle: 90, X: 0, Y: 1000},
	}, body.Day.Positions)
}

func TestDayErrors(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	for _, path := range []string{"/api/v1/weather/days/0", "/api/v1/weather/days/121"} {
		var body models.ErrorResponse
		rr := get(t, r, path, &body)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, "DAY_NOT_FOUND", body.Error.Code)
	}

	var body models.ErrorResponse
	rr := get(t, r, "/api/v1/weather/days/tomorrow", &body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_DAY", body.Error.Code)
}

func TestByCategory(t *testing.T) {
	r, store := newTestRouter(t, true, Options{})
	res, _ := store.Load()

	var body models.CategoryResponse
	rr := get(t, r, "/api/v1/weather/categories/drought", &body)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "DROUGHT", body.Weather)
	assert.Equal(t, res.Counts().Drought, body.Count)
	require.Len(t, body.Days, body.Count)
	for i, d := range body.Days {
		assert.Equal(t, "DROUGHT", d.Weather)
		if i > 0 {
			assert.Greater(t, d.Day.Day, body.Days[i-1].Day.Day)
		}
	}
}

func TestUnknownCategory(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	var body models.ErrorResponse
	rr := get(t, r, "/api/v1/weather/categories/rainn", &body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "UNKNOWN_CATEGORY", body.Error.Code)
	assert.Equal(t, "RAIN", body.Error.Details["did_you_mean"])
}

func TestNotReady(t *testing.T) {
	r, _ := newTestRouter(t, false, Options{})

	var body models.ErrorResponse
	rr := get(t, r, "/api/v1/weather/summary", &body)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "NOT_READY", body.Error.Code)

	var health map[string]interface{}
	rr = get(t, r, "/health", &health)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, health["ready"])
}

func TestBodies(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	var body struct {
		Bodies []models.BodyInfo `json:"bodies"`
	}
	rr := get(t, r, "/api/v1/bodies", &body)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, body.Bodies, 4)
	assert.Equal(t, "BETASOIDE", body.Bodies[0].Name)
	assert.True(t, body.Bodies[3].Center)
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/summary", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestPreflight(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{CORSOrigins: []string{"http://allowed.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/weather/summary", nil)
	req.Header.Set("Origin", "http://allowed.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://allowed.test", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	rr := get(t, r, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body models.ErrorResponse
	rr = get(t, r, "/health", &body)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewCollector(reg)
	require.NoError(t, err)
	r, _ := newTestRouter(t, true, Options{Metrics: metrics})

	get(t, r, "/api/v1/weather/summary", nil)
	rr := get(t, r, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{code="200",method="GET",route="/api/v1/weather/summary"} 1`)
}

func TestPanicBecomes500(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	var body models.ErrorResponse
	rr := get(t, r, "/boom", &body)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, true, Options{})

	var body models.ErrorResponse
	rr := get(t, r, "/api/v1/nope", &body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}
