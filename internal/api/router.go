// Package api wires the HTTP surface over the published simulation result.
package api

import (
	"net/http"

	"planet-weather/internal/api/handlers"
	"planet-weather/internal/api/middleware"
	"planet-weather/internal/api/models"
	"planet-weather/internal/forecast"
	"planet-weather/internal/observability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options configures NewRouter. Metrics and rate limiting are optional.
type Options struct {
	Store          *forecast.Store
	Logger         *zap.SugaredLogger
	Metrics        *observability.Collector
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler(opts.Logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	router.Use(middleware.CORS(opts.CORSOrigins))
	if opts.RateLimitRPS > 0 {
		limiter := middleware.NewIPRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)
		router.Use(middleware.RateLimit(limiter))
	}

	weatherHandler := handlers.NewWeatherHandler(opts.Store)
	bodyHandler := handlers.NewBodyHandler(opts.Store.Bodies())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		_, ready := opts.Store.Load()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": ready, "horizon_days": opts.Store.Horizon()})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/weather/summary", weatherHandler.Summary)
		v1.GET("/weather/days/:day", weatherHandler.Day)
		v1.GET("/weather/categories/:category", weatherHandler.ByCategory)

		v1.GET("/bodies", bodyHandler.ListBodies)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Not found",
			},
		})
	})

	return router
}
