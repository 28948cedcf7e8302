// Package config loads the roomgrid CLI configuration from defaults, a JSON
// file and command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/roomgrid/layout"
	"github.com/katalvlaran/roomgrid/roomtype"
)

// ErrUnknownCatalog indicates a catalog name with no built-in catalog.
var ErrUnknownCatalog = errors.New("config: unknown catalog")

// ErrInvalid indicates a value no generator can be built from.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the roomgrid CLI configuration.
type Config struct {
	Seed       int64  `json:"seed"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	StartRow   int    `json:"start_row"`
	StartCol   int    `json:"start_col"`
	Count      int    `json:"count"`
	Workers    int    `json:"workers"`     // 0 = GOMAXPROCS
	SideWeight int    `json:"side_weight"` // copies of each sideways exit
	StepBudget int    `json:"step_budget"` // 0 = height*width
	Catalog    string `json:"catalog"`     // "standard" or "permissive"
	Validate   bool   `json:"validate"`
}

// DefaultConfig returns a Config with sensible defaults: one 4×4 layout
// from the top of column 1 with the standard catalog.
func DefaultConfig() *Config {
	return &Config{
		Seed:       1,
		Height:     4,
		Width:      4,
		StartRow:   0,
		StartCol:   1,
		Count:      1,
		SideWeight: 2,
		Catalog:    "standard",
	}
}

// Load reads a JSON config file over the defaults. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["start-row"] {
		cfg.StartRow = fromFile.StartRow
	}
	if !explicitFlags["start-col"] {
		cfg.StartCol = fromFile.StartCol
	}
	if !explicitFlags["count"] {
		cfg.Count = fromFile.Count
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["side-weight"] {
		cfg.SideWeight = fromFile.SideWeight
	}
	if !explicitFlags["step-budget"] {
		cfg.StepBudget = fromFile.StepBudget
	}
	if !explicitFlags["catalog"] {
		cfg.Catalog = fromFile.Catalog
	}
	if !explicitFlags["validate"] {
		cfg.Validate = fromFile.Validate
	}
}

// RoomCatalog resolves the configured catalog name.
func (c *Config) RoomCatalog() ([]roomtype.RoomType, error) {
	switch c.Catalog {
	case "standard", "":
		return roomtype.Standard(), nil
	case "permissive":
		return roomtype.Permissive(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, c.Catalog)
	}
}

// Start returns the configured starting coordinate.
func (c *Config) Start() layout.Coordinate {
	return layout.Coordinate{Row: c.StartRow, Col: c.StartCol}
}

// GeneratorOptions translates the config into layout options. Values the
// option constructors would panic on are reported as ErrInvalid instead.
func (c *Config) GeneratorOptions() ([]layout.Option, error) {
	if c.SideWeight < 1 {
		return nil, fmt.Errorf("%w: side_weight must be at least 1 (%d)", ErrInvalid, c.SideWeight)
	}
	if c.Count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative (%d)", ErrInvalid, c.Count)
	}
	opts := []layout.Option{
		layout.WithSize(c.Height, c.Width),
		layout.WithSeed(c.Seed),
		layout.WithSideWeight(c.SideWeight),
	}
	if c.StepBudget != 0 {
		opts = append(opts, layout.WithStepBudget(c.StepBudget))
	}
	return opts, nil
}

// NewGenerator builds a layout generator from the config.
func (c *Config) NewGenerator() (*layout.Generator, error) {
	catalog, err := c.RoomCatalog()
	if err != nil {
		return nil, err
	}
	opts, err := c.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	return layout.NewGenerator(catalog, c.Start(), opts...)
}
