package camera

import "math"

// Ticks returns evenly spaced "nice" tick positions (steps of 1, 2 or 5
// times a power of ten) covering [from, to] with roughly n intervals.
func Ticks(from, to float64, n int) []float64 {
	if n <= 0 || !(to > from) {
		return nil
	}

	step := niceStep((to - from) / float64(n))
	start := math.Ceil(from/step) * step

	var ticks []float64
	for v := start; v <= to+step*1e-9; v += step {
		// Snap accumulated error so labels print cleanly
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
