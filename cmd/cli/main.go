package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"planet-weather/internal/config"
	"planet-weather/internal/model"
	"planet-weather/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "simulate":
		err = cmdSimulate(os.Args[2:])
	case "day":
		err = cmdDay(os.Args[2:])
	case "category":
		err = cmdCategory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, simulation.ErrDayNotFound) || errors.Is(err, model.ErrUnknownCategory) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate [--config examples/config.yaml] [--days 3650] [--out results/days.csv]")
	fmt.Println("  cli day --n 90 [--config examples/config.yaml] [--days 3650]")
	fmt.Println("  cli category --name rain [--config examples/config.yaml] [--days 3650]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints the per-category counts and the rainiest day")
	fmt.Println("  - --days overrides simulation.horizon_days from the config")
}

// run loads the config and simulates the configured system.
func run(cfgPath string, days int) (*simulation.Result, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if days > 0 {
		cfg.Simulation.HorizonDays = days
	}
	bodies, err := cfg.Simulation.ToModelBodies()
	if err != nil {
		return nil, err
	}
	engine, err := simulation.New(bodies)
	if err != nil {
		return nil, err
	}
	return engine.Run(cfg.Simulation.HorizonDays)
}

func cmdSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	days := fs.Int("days", 0, "Days to simulate (0=config value)")
	outPath := fs.String("out", "", "Optional: write one CSV row per day to this path")
	_ = fs.Parse(args)

	res, err := run(*cfgPath, *days)
	if err != nil {
		return err
	}

	counts := res.Counts()
	fmt.Printf("%-10s %8s\n", "weather", "days")
	for _, cat := range model.Categories {
		fmt.Printf("%-10s %8d\n", cat, counts.Get(cat))
	}
	fmt.Printf("%-10s %8d\n", "total", res.TotalDays())

	if d, ok := res.RainiestDay(); ok {
		fmt.Printf("Rainiest day=%d perimeter=%.2f\n", d.Index, d.Perimeter)
	} else {
		fmt.Println("No rain in the simulated period")
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := simulation.WriteDaysCSV(*outPath, res.Days()); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", res.TotalDays(), *outPath)
	}
	return nil
}

func cmdDay(args []string) error {
	fs := flag.NewFlagSet("day", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	days := fs.Int("days", 0, "Days to simulate (0=config value)")
	n := fs.Int("n", 1, "Day index to report (1-based)")
	_ = fs.Parse(args)

	res, err := run(*cfgPath, *days)
	if err != nil {
		return err
	}
	d, err := res.DayByIndex(*n)
	if err != nil {
		return err
	}

	fmt.Printf("day=%d weather=%s perimeter=%.2f\n", d.Index, d.Category, d.Perimeter)
	fmt.Printf("%-12s %6s %10s %10s\n", "body", "angle", "x", "y")
	for _, b := range d.Bodies() {
		fmt.Printf("%-12s %6d %10.0f %10.0f\n", b.Body, b.Angle, b.X, b.Y)
	}
	return nil
}

func cmdCategory(args []string) error {
	fs := flag.NewFlagSet("category", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	days := fs.Int("days", 0, "Days to simulate (0=config value)")
	name := fs.String("name", "", "Weather category: drought, rain, optimal or undefined")
	_ = fs.Parse(args)

	cat, err := model.ParseCategory(*name)
	if err != nil {
		return err
	}
	res, err := run(*cfgPath, *days)
	if err != nil {
		return err
	}
	matching, err := res.DaysByCategory(cat)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d days\n", cat, len(matching))
	for _, d := range matching {
		fmt.Printf("%6d %12.2f\n", d.Index, d.Perimeter)
	}
	return nil
}
