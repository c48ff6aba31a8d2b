package dynamics

// TwoStrategyParams configures a Hawk-Dove run. Doves make up whatever
// share of the population is not Hawk.
type TwoStrategyParams struct {
	HawkProportion float64
	Generations    int
	InitialFitness float64 // starting fitness of both strategies
	Value          float64 // payoff to the winner of a contest
	Cost           float64 // payoff lost by an injured loser
}

// Validate checks the starting Hawk proportion lies in [0,1].
func (tp TwoStrategyParams) Validate() error {
	return checkRange(tp.HawkProportion)
}

// Simulate validates the parameters and runs the Hawk-Dove dynamics.
// The returned trajectory has series for Hawk and Dove, in that order.
func (tp TwoStrategyParams) Simulate() (*Trajectory, error) {
	if err := tp.Validate(); err != nil {
		return nil, err
	}
	p := tp.HawkProportion
	return replicate([]Strategy{Hawk, Dove}, []float64{p, 1 - p}, tp.Generations, tp.stepper()), nil
}

// stepper returns the closed-form Hawk-Dove update. Both fitness values
// start at InitialFitness and accumulate the expected contest payoff each
// generation. The denominator is not guarded: degenerate parameters
// produce NaN or Inf rather than a clamped value.
func (tp TwoStrategyParams) stepper() stepFunc {
	wh, wd := tp.InitialFitness, tp.InitialFitness
	v, c := tp.Value, tp.Cost

	return func(cur, next []float64) {
		p := cur[0]

		num := p*wh - (v*p*p)/2 - (c*p*p)/2 + v*p
		den := p*wh - p*wd + wd + v/2 - (c*p*p)/2
		pNext := num / den

		wh += p*((v-c)/2) + (1-p)*v
		wd += (1 - p) * (v / 2)

		next[0] = pNext
		next[1] = 1 - pNext
	}
}

// SimulateTwoStrategy runs the Hawk-Dove game from the given Hawk
// proportion for the given number of generations.
func SimulateTwoStrategy(hawkProportion float64, generations int, initialFitness, value, cost float64) (*Trajectory, error) {
	return TwoStrategyParams{
		HawkProportion: hawkProportion,
		Generations:    generations,
		InitialFitness: initialFitness,
		Value:          value,
		Cost:           cost,
	}.Simulate()
}
