// SPDX-License-Identifier: MIT
// Package: roomgrid/layout
//
// options.go - functional options for NewGenerator.
//
// Contract:
//   • Options are functional (type Option func(*generatorConfig)).
//   • Constructors that can only be misused by a programmer (nil RNG, side
//     weight < 1) PANIC. Values that may come from user configuration
//     (budget, size) are recorded and surface as errors from NewGenerator.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package layout

import (
	"fmt"
	"math/rand"
)

// Option customizes a Generator before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithSize sets the grid dimensions. Values below 1 make NewGenerator
// return ErrBadSize.
func WithSize(height, width int) Option {
	return func(c *generatorConfig) {
		c.size = Size{Height: height, Width: width}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (0 maps to the default seed).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithStepBudget caps the number of carving steps.
//
//	n > 0: carving fails with ErrStepBudgetExceeded after n steps
//	n <= 0: invalid option → ErrOptionViolation from NewGenerator
func WithStepBudget(n int) Option {
	return func(c *generatorConfig) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: step budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.budget = n
	}
}

// WithSideWeight sets how many copies of each sideways exit the direction
// table holds (see direction.WithSideWeight). Panics if k < 1.
func WithSideWeight(k int) Option {
	if k < 1 {
		panic("layout: WithSideWeight(k<1)")
	}
	return func(c *generatorConfig) {
		c.sideWeight = k
	}
}
