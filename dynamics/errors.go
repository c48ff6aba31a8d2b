package dynamics

import (
	"errors"
	"fmt"
)

// ErrInvalidProportion is matched by every proportion validation failure.
var ErrInvalidProportion = errors.New("invalid proportion")

// Reasons reported by InvalidProportionError.
const (
	ReasonOutOfRange  = "out of range"
	ReasonSumExceeds1 = "sum exceeds 1"
)

// InvalidProportionError describes a starting proportion, or pair of
// proportions, that cannot describe a population mix.
type InvalidProportionError struct {
	Values []float64 // offending value(s) as supplied by the caller
	Reason string    // ReasonOutOfRange or ReasonSumExceeds1
}

func (e *InvalidProportionError) Error() string {
	if e.Reason == ReasonSumExceeds1 {
		var sum float64
		for _, v := range e.Values {
			sum += v
		}
		return fmt.Sprintf("sum of %d proportions must be less than 1, to allow for the %s proportion, not %v",
			len(e.Values), Bourgeois, sum)
	}
	return fmt.Sprintf("proportion must be in range [0,1], not %v", e.Values[0])
}

// Is lets errors.Is(err, ErrInvalidProportion) match.
func (e *InvalidProportionError) Is(target error) bool {
	return target == ErrInvalidProportion
}

// checkRange rejects values outside [0,1], and NaN.
func checkRange(v float64) error {
	if !(v >= 0 && v <= 1) {
		return outOfRange(v)
	}
	return nil
}

func outOfRange(v float64) error {
	return &InvalidProportionError{Values: []float64{v}, Reason: ReasonOutOfRange}
}
