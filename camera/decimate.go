package camera

import "math"

// Bucket summarises consecutive generations that share one screen column.
type Bucket struct {
	Gen      float64 // generation at the centre of the bucket
	Min, Max float64 // extremes within the bucket, NaN if any value is NaN
	First    float64
	Last     float64
}

// Decimate reduces series[from..to] (inclusive, clamped to the series)
// to at most n buckets. When the window already fits, each generation
// becomes its own bucket.
func Decimate(series []float64, from, to, n int) []Bucket {
	from = max(from, 0)
	to = min(to, len(series)-1)
	if to < from || n <= 0 {
		return nil
	}

	count := to - from + 1
	if count <= n {
		out := make([]Bucket, count)
		for i := range out {
			v := series[from+i]
			out[i] = Bucket{Gen: float64(from + i), Min: v, Max: v, First: v, Last: v}
		}
		return out
	}

	out := make([]Bucket, n)
	for b := range out {
		lo := from + b*count/n
		hi := from + (b+1)*count/n - 1

		bk := Bucket{
			Gen:   float64(lo+hi) / 2,
			Min:   series[lo],
			Max:   series[lo],
			First: series[lo],
			Last:  series[hi],
		}
		for _, v := range series[lo+1 : hi+1] {
			bk.Min = math.Min(bk.Min, v)
			bk.Max = math.Max(bk.Max, v)
		}
		out[b] = bk
	}
	return out
}
