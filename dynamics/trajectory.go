// Package dynamics implements discrete-generation replicator dynamics for
// the Hawk-Dove and Hawk-Dove-Bourgeois games.
//
// Each simulation is a pure function of its inputs: it validates the
// starting proportions, iterates the fitness/proportion update for the
// requested number of generations, and returns the full history as a
// [Trajectory]. Nothing is drawn or written here; see the ui and telemetry
// packages for that.
package dynamics

import (
	"math"
	"slices"
)

// Strategy identifies one behavioural strategy in a contest population.
type Strategy uint8

const (
	Hawk Strategy = iota
	Dove
	Bourgeois
)

// String returns the plural legend name for the strategy.
func (s Strategy) String() string {
	switch s {
	case Hawk:
		return "Hawks"
	case Dove:
		return "Doves"
	case Bourgeois:
		return "Bourgeois"
	default:
		return "Unknown"
	}
}

// Trajectory holds the proportion of each strategy at every generation,
// from the initial mix (generation 0) to the last update.
// A Trajectory is never modified after a simulation returns it.
type Trajectory struct {
	strategies []Strategy
	series     [][]float64 // series[i][g] = proportion of strategies[i] at generation g
}

func newTrajectory(strategies []Strategy, initial []float64, generations int) *Trajectory {
	tr := &Trajectory{
		strategies: strategies,
		series:     make([][]float64, len(strategies)),
	}
	for i := range tr.series {
		tr.series[i] = make([]float64, 1, generations+1)
		tr.series[i][0] = initial[i]
	}
	return tr
}

func (tr *Trajectory) append(props []float64) {
	for i, p := range props {
		tr.series[i] = append(tr.series[i], p)
	}
}

// Strategies returns the strategies in series order.
func (tr *Trajectory) Strategies() []Strategy {
	return slices.Clone(tr.strategies)
}

// Len returns the number of snapshots, which is generations+1.
func (tr *Trajectory) Len() int {
	if len(tr.series) == 0 {
		return 0
	}
	return len(tr.series[0])
}

// Generations returns the number of updates that were applied.
func (tr *Trajectory) Generations() int {
	return tr.Len() - 1
}

// Series returns a copy of the proportions of s over all generations,
// or nil if s is not part of this model.
func (tr *Trajectory) Series(s Strategy) []float64 {
	i := slices.Index(tr.strategies, s)
	if i < 0 {
		return nil
	}
	return slices.Clone(tr.series[i])
}

// At returns the proportion vector at generation g, in Strategies order.
// It panics if g is out of range.
func (tr *Trajectory) At(g int) []float64 {
	out := make([]float64, len(tr.series))
	for i, s := range tr.series {
		out[i] = s[g]
	}
	return out
}

// Final returns the proportion vector after the last generation.
func (tr *Trajectory) Final() []float64 {
	return tr.At(tr.Len() - 1)
}

// Finite reports whether every recorded proportion is a finite number.
// Degenerate parameters can drive a denominator to zero, after which the
// series fills with NaN or Inf.
func (tr *Trajectory) Finite() bool {
	for _, s := range tr.series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
