// Command roomgrid generates grid level layouts and prints them as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/roomgrid/internal/config"
	"github.com/katalvlaran/roomgrid/layout"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		log.Error("roomgrid failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, log *slog.Logger) error {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("roomgrid", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 uses the default seed)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in rooms")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in rooms")
	fs.IntVar(&cfg.StartRow, "start-row", cfg.StartRow, "starting row")
	fs.IntVar(&cfg.StartCol, "start-col", cfg.StartCol, "starting column")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of layouts")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers (0 = GOMAXPROCS)")
	fs.IntVar(&cfg.SideWeight, "side-weight", cfg.SideWeight, "copies of each sideways exit in the direction table")
	fs.IntVar(&cfg.StepBudget, "step-budget", cfg.StepBudget, "carving step limit (0 = height*width)")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "room catalog: standard or permissive")
	fs.BoolVar(&cfg.Validate, "validate", cfg.Validate, "re-check every layout before printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
		log.Info("config loaded", "path", *configPath)
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		return err
	}
	log.Info("generating",
		"count", cfg.Count,
		"height", cfg.Height,
		"width", cfg.Width,
		"start", g.Start(),
		"catalog", cfg.Catalog,
		"seed", cfg.Seed,
	)

	layouts, err := layout.Batch(ctx, g, cfg.Count, cfg.Workers)
	if err != nil {
		return err
	}
	if cfg.Validate {
		for i, l := range layouts {
			if err := layout.Validate(l); err != nil {
				return fmt.Errorf("layout %d: %w", i, err)
			}
		}
		log.Info("layouts validated", "count", len(layouts))
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if len(layouts) == 1 {
		return enc.Encode(layouts[0])
	}
	return enc.Encode(layouts)
}
