package dynamics

import "slices"

// stepFunc writes the next-generation proportions for cur into next and
// advances whatever fitness state the model keeps. cur and next have one
// entry per strategy and never alias.
type stepFunc func(cur, next []float64)

// replicate runs step for the given number of generations starting from
// initial and records every proportion vector. A non-positive generation
// count yields a trajectory holding only the initial mix.
func replicate(strategies []Strategy, initial []float64, generations int, step stepFunc) *Trajectory {
	tr := newTrajectory(strategies, initial, max(generations, 0))

	cur := slices.Clone(initial)
	next := make([]float64, len(initial))
	for i := 0; i < generations; i++ {
		step(cur, next)
		tr.append(next)
		cur, next = next, cur
	}
	return tr
}
