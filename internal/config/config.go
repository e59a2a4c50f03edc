package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"planet-weather/internal/model"
	"planet-weather/internal/simulation"

	"gopkg.in/yaml.v3"
)

// DefaultHorizonDays is ten 365-day years.
const DefaultHorizonDays = 365 * 10

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

type SimulationConfig struct {
	HorizonDays int `yaml:"horizon_days"`
	// Bodies overlay the default system slot by slot; omitted fields keep the defaults.
	Bodies []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name      string  `yaml:"name"`
	Radius    float64 `yaml:"radius"`
	Speed     int     `yaml:"speed"`
	Direction string  `yaml:"direction"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Mode           string   `yaml:"mode"` // debug or release
	CORSOrigins    []string `yaml:"cors_origins"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps"` // 0 disables limiting
	RateLimitBurst int      `yaml:"rate_limit_burst"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: the fixed three-body system over ten years.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path (empty means defaults only), fills defaults, applies
// environment overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the file as-is without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	var c Config
	if path == "" {
		return &c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation.HorizonDays == 0 {
		c.Simulation.HorizonDays = DefaultHorizonDays
	}
	defaults := model.DefaultBodies()
	merged := make([]BodyConfig, 0, len(defaults))
	for i, b := range defaults {
		base := fromModel(b)
		if i < len(c.Simulation.Bodies) {
			base = MergeBody(base, c.Simulation.Bodies[i])
		}
		merged = append(merged, base)
	}
	// Extra entries are kept so Validate can reject them.
	if len(c.Simulation.Bodies) > len(defaults) {
		merged = append(merged, c.Simulation.Bodies[len(defaults):]...)
	}
	c.Simulation.Bodies = merged

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = int(c.Server.RateLimitRPS) + 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// ApplyEnv overlays API_PORT, API_ENV and LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("API_PORT"); port != "" {
		c.Server.Port = port
	}
	if os.Getenv("API_ENV") == "production" {
		c.Server.Mode = "release"
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	h := c.Simulation.HorizonDays
	if h < 1 || h > simulation.MaxHorizonDays {
		return fmt.Errorf("simulation.horizon_days must be in [1, %d], got %d", simulation.MaxHorizonDays, h)
	}
	if _, err := c.Simulation.ToModelBodies(); err != nil {
		return fmt.Errorf("simulation.bodies invalid: %w", err)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Server.RateLimitRPS < 0 {
		return errors.New("server.rate_limit_rps must be >= 0")
	}
	return nil
}

// ToModelBodies converts the configured bodies to exactly three slot-ordered bodies.
func (s SimulationConfig) ToModelBodies() ([3]model.Body, error) {
	var out [3]model.Body
	if len(s.Bodies) != len(out) {
		return out, fmt.Errorf("expected %d orbiting bodies, got %d", len(out), len(s.Bodies))
	}
	seen := map[string]bool{}
	for i, bc := range s.Bodies {
		dir, err := model.ParseDirection(bc.Direction)
		if err != nil {
			return out, fmt.Errorf("body %d: %w", i+1, err)
		}
		b := model.Body{
			Name:      strings.ToUpper(strings.TrimSpace(bc.Name)),
			Radius:    bc.Radius,
			Speed:     bc.Speed,
			Direction: dir,
		}
		if err := b.Validate(); err != nil {
			return out, err
		}
		if seen[b.Name] {
			return out, fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = true
		out[i] = b
	}
	return out, nil
}

func fromModel(b model.Body) BodyConfig {
	return BodyConfig{
		Name:      b.Name,
		Radius:    b.Radius,
		Speed:     b.Speed,
		Direction: string(b.Direction),
	}
}

// MergeBody overlays non-zero fields from override onto base.
func MergeBody(base, override BodyConfig) BodyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	// Note: a zero radius cannot be set through an override; the center is the only body at the origin.
	if override.Radius != 0 {
		out.Radius = override.Radius
	}
	if override.Speed != 0 {
		out.Speed = override.Speed
	}
	if override.Direction != "" {
		out.Direction = override.Direction
	}
	return out
}
