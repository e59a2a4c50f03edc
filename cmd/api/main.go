package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"planet-weather/internal/api"
	"planet-weather/internal/config"
	"planet-weather/internal/forecast"
	"planet-weather/internal/logging"
	"planet-weather/internal/observability"
	"planet-weather/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (defaults built in when empty)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	router, err := newServer(cfg, logger.With(zap.String("config", *cfgPath)), nil)
	if err != nil {
		sugar.Fatalw("failed to start", "error", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	sugar.Infow("starting API server", "addr", addr, "mode", cfg.Server.Mode, "config", *cfgPath)
	if err := router.Run(addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}

// newServer builds the engine from cfg, runs the simulation and returns the
// router over the published result. reg nil means the global registry.
func newServer(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*gin.Engine, error) {
	sugar := logger.Sugar()

	bodies, err := cfg.Simulation.ToModelBodies()
	if err != nil {
		return nil, fmt.Errorf("invalid bodies: %w", err)
	}
	engine, err := simulation.New(bodies)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	metrics, err := observability.NewCollector(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	// The run completes before the listener opens, so requests never see NOT_READY
	// in this binary.
	store := forecast.NewStore(engine, cfg.Simulation.HorizonDays, sugar.Named("forecast"), metrics)
	if _, err := store.Run(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)
	return api.NewRouter(api.Options{
		Store:          store,
		Logger:         sugar.Named("http"),
		Metrics:        metrics,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}), nil
}
