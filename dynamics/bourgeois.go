package dynamics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ThreeStrategyParams configures a Hawk-Dove-Bourgeois run. The Bourgeois
// share is 1 - HawkProportion - DoveProportion.
type ThreeStrategyParams struct {
	HawkProportion float64
	DoveProportion float64
	Generations    int
	InitialFitness float64 // starting fitness of all three strategies
	Value          float64
	Cost           float64
}

// Validate checks each proportion lies in [0,1] and that together they
// leave a non-negative Bourgeois share. Checks run in a fixed order and
// the first failure is returned.
func (tp ThreeStrategyParams) Validate() error {
	h, d := tp.HawkProportion, tp.DoveProportion
	switch {
	case h < 0:
		return outOfRange(h)
	case d < 0:
		return outOfRange(d)
	case d > 1:
		return outOfRange(d)
	case h > 1:
		return outOfRange(h)
	case math.IsNaN(h):
		return outOfRange(h)
	case math.IsNaN(d):
		return outOfRange(d)
	case h+d > 1:
		return &InvalidProportionError{Values: []float64{h, d}, Reason: ReasonSumExceeds1}
	}
	return nil
}

// Simulate validates the parameters and runs the Hawk-Dove-Bourgeois
// dynamics. Series are ordered Hawk, Dove, Bourgeois.
func (tp ThreeStrategyParams) Simulate() (*Trajectory, error) {
	if err := tp.Validate(); err != nil {
		return nil, err
	}
	p, q := tp.HawkProportion, tp.DoveProportion
	initial := []float64{p, q, 1 - p - q}
	return replicate([]Strategy{Hawk, Dove, Bourgeois}, initial, tp.Generations, tp.stepper()), nil
}

// stepper returns the replicator update for three strategies. Each
// strategy's payoff is its accumulated fitness plus the expected contest
// payoff against the current mix; its next share is its weighted payoff
// over the population total. The increment (payoff minus fitness) is then
// added to the fitness state.
func (tp ThreeStrategyParams) stepper() stepFunc {
	v, c := tp.Value, tp.Cost
	w := []float64{tp.InitialFitness, tp.InitialFitness, tp.InitialFitness}
	inc := make([]float64, 3)
	payoff := make([]float64, 3)
	weighted := make([]float64, 3)

	return func(cur, next []float64) {
		p, q, r := cur[0], cur[1], cur[2]

		inc[0] = p*((v-c)/2) + q*v + r*((3*v-c)/4)
		inc[1] = q*(v/2) + r*(v/4)
		inc[2] = p*((v-c)/4) + q*((3*v)/4) + r*(v/2)

		floats.AddTo(payoff, w, inc)
		floats.MulTo(weighted, cur, payoff)
		total := floats.Sum(weighted)
		for i := range next {
			next[i] = weighted[i] / total
		}

		floats.Add(w, inc)
	}
}

// SimulateThreeStrategy runs the Hawk-Dove-Bourgeois game from the given
// Hawk and Dove proportions for the given number of generations.
func SimulateThreeStrategy(hawkProportion, doveProportion float64, generations int, initialFitness, value, cost float64) (*Trajectory, error) {
	return ThreeStrategyParams{
		HawkProportion: hawkProportion,
		DoveProportion: doveProportion,
		Generations:    generations,
		InitialFitness: initialFitness,
		Value:          value,
		Cost:           cost,
	}.Simulate()
}
