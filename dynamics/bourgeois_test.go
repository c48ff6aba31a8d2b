package dynamics

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestThreeStrategyRegressionVector(t *testing.T) {
	tr, err := SimulateThreeStrategy(0.2, 0.3, 1, 2, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tr.Len())
	}
	for _, s := range []Strategy{Hawk, Dove, Bourgeois} {
		if n := len(tr.Series(s)); n != 2 {
			t.Errorf("%s: expected 2 entries, got %d", s, n)
		}
	}

	if !floats.EqualApprox(tr.At(0), []float64{0.2, 0.3, 0.5}, 1e-15) {
		t.Errorf("expected initial mix (0.2, 0.3, 0.5), got %v", tr.At(0))
	}

	// Payoffs with v=1, c=3 against (0.2, 0.3, 0.5):
	//   hawk      2 + 0.2*-1    + 0.3*1    + 0.5*0   = 2.1
	//   dove      2 + 0.3*0.5   + 0.5*0.25           = 2.275
	//   bourgeois 2 + 0.2*-0.5  + 0.3*0.75 + 0.5*0.5 = 2.375
	// Weighted: 0.42, 0.6825, 1.1875; total 2.29.
	want := []float64{0.42 / 2.29, 0.6825 / 2.29, 1.1875 / 2.29}
	if !floats.EqualApprox(tr.At(1), want, 1e-12) {
		t.Errorf("expected generation 1 = %v, got %v", want, tr.At(1))
	}
}

func TestThreeStrategySumExceedsOne(t *testing.T) {
	tr, err := SimulateThreeStrategy(0.5, 0.6, 100, 2, 1, 3)
	if tr != nil {
		t.Error("expected no trajectory on failure")
	}
	if !errors.Is(err, ErrInvalidProportion) {
		t.Fatalf("expected ErrInvalidProportion, got %v", err)
	}
	var ipe *InvalidProportionError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidProportionError, got %T", err)
	}
	if ipe.Reason != ReasonSumExceeds1 {
		t.Errorf("expected reason %q, got %q", ReasonSumExceeds1, ipe.Reason)
	}
	want := "sum of 2 proportions must be less than 1, to allow for the Bourgeois proportion, not 1.1"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestThreeStrategyValidationOrder(t *testing.T) {
	tests := []struct {
		name       string
		hawk, dove float64
		offending  float64
		reason     string
	}{
		{"hawk negative", -0.1, -0.2, -0.1, ReasonOutOfRange},
		{"dove negative", 0.5, -0.2, -0.2, ReasonOutOfRange},
		{"dove above one", 1.5, 1.2, 1.2, ReasonOutOfRange},
		{"hawk above one", 1.5, 0.2, 1.5, ReasonOutOfRange},
		{"sum above one", 0.7, 0.7, 0.7, ReasonSumExceeds1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ThreeStrategyParams{HawkProportion: tc.hawk, DoveProportion: tc.dove}.Validate()
			var ipe *InvalidProportionError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected *InvalidProportionError, got %v", err)
			}
			if ipe.Reason != tc.reason {
				t.Errorf("expected reason %q, got %q", tc.reason, ipe.Reason)
			}
			if ipe.Values[0] != tc.offending {
				t.Errorf("expected offending value %v, got %v", tc.offending, ipe.Values)
			}
		})
	}
}

func TestThreeStrategyValidatesWithZeroGenerations(t *testing.T) {
	if _, err := SimulateThreeStrategy(0.5, 0.6, 0, 2, 1, 3); err == nil {
		t.Error("expected validation to run even for zero generations")
	}

	tr, err := SimulateThreeStrategy(0.25, 0.25, 0, 2, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("expected a single entry, got %d", tr.Len())
	}
}

func TestThreeStrategyAcceptsBoundaries(t *testing.T) {
	for _, mix := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {0.5, 0.5}} {
		if _, err := SimulateThreeStrategy(mix[0], mix[1], 5, 2, 1, 3); err != nil {
			t.Errorf("mix %v should be accepted: %v", mix, err)
		}
	}
}

func TestThreeStrategyProportionsSumToOne(t *testing.T) {
	tr, err := SimulateThreeStrategy(0.3, 0.3, 1000, 2, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.Finite() {
		t.Fatal("expected finite trajectory")
	}
	for g := 0; g < tr.Len(); g++ {
		x := tr.At(g)
		if math.Abs(floats.Sum(x)-1) > 1e-9 {
			t.Fatalf("generation %d: proportions %v do not sum to 1", g, x)
		}
		for i, v := range x {
			if v < 0 {
				t.Fatalf("generation %d: negative proportion for %s: %v", g, tr.Strategies()[i], v)
			}
		}
	}
}

func TestThreeStrategyDeterministic(t *testing.T) {
	a, _ := SimulateThreeStrategy(0.1, 0.6, 500, 2, 1, 3)
	b, _ := SimulateThreeStrategy(0.1, 0.6, 500, 2, 1, 3)
	for g := 0; g < a.Len(); g++ {
		if !floats.Equal(a.At(g), b.At(g)) {
			t.Fatalf("generation %d differs between runs: %v vs %v", g, a.At(g), b.At(g))
		}
	}
}

func TestThreeStrategyDegenerateDenominator(t *testing.T) {
	// Zero fitness and zero value leave every payoff at 0 for a dove-only mix.
	tr, err := SimulateThreeStrategy(0, 1, 1, 0, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Finite() {
		t.Error("expected NaN after a zero normalizing total")
	}
}

func TestStrategyString(t *testing.T) {
	names := map[Strategy]string{Hawk: "Hawks", Dove: "Doves", Bourgeois: "Bourgeois", Strategy(9): "Unknown"}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("expected %q, got %q", want, s.String())
		}
	}
}
