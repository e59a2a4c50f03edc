// Package observability exposes Prometheus metrics for the simulation run and
// the HTTP surface.
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"planet-weather/internal/model"
	"planet-weather/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	WeatherDays  *prometheus.GaugeVec
	RunDuration  prometheus.Histogram
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	days, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "weather_days",
		Help: "Number of simulated days per weather category in the published run.",
	}, []string{"category"}), "weather_days")
	if err != nil {
		return nil, err
	}

	run, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_run_duration_seconds",
		Help:    "Wall time of a full simulation run.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}), "simulation_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:     gatherer,
		WeatherDays:  days,
		RunDuration:  run,
		HTTPRequests: requests,
		HTTPDuration: durations,
	}, nil
}

// ObserveRun publishes the category counts and duration of a finished run.
func (c *Collector) ObserveRun(counts simulation.Counts, took time.Duration) {
	if c == nil {
		return
	}
	for _, cat := range model.Categories {
		c.WeatherDays.WithLabelValues(string(cat)).Set(float64(counts.Get(cat)))
	}
	c.RunDuration.Observe(took.Seconds())
}

// Middleware records request counts and latency per matched route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// register tolerates a collector that is already registered with the same type.
func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return col, nil
}
