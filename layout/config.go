// SPDX-License-Identifier: MIT
// Package: roomgrid/layout
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • size       = 4×4
//   • rng        = rngFromSeed(0)
//   • budget     = 0 (resolved to size.Cells() in NewGenerator)
//   • sideWeight = direction.DefaultSideWeight

package layout

import (
	"math/rand"

	"github.com/katalvlaran/roomgrid/direction"
)

// generatorConfig aggregates all knobs used by NewGenerator.
type generatorConfig struct {
	size       Size
	rng        *rand.Rand
	budget     int // 0 means "use size.Cells()"
	sideWeight int

	// first recorded option violation
	err error
}

// newGeneratorConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		size:       DefaultSize(),
		sideWeight: direction.DefaultSideWeight,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		prev := cfg.err
		opt(&cfg)
		if prev != nil {
			cfg.err = prev
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}
