package layout

import "math/rand"

// fill assigns a uniformly random catalog entry to every empty cell, in
// row-major order. Filler cells need not connect to anything.
func (g *Generator) fill(l *LevelLayout, rng *rand.Rand) {
	for r := range l.Grid {
		for c := range l.Grid[r] {
			if l.Grid[r][c] != nil {
				continue
			}
			l.Grid[r][c] = g.catalog[rng.Intn(len(g.catalog))]
		}
	}
}
