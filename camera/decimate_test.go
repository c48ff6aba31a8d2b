package camera

import (
	"math"
	"testing"
)

func TestDecimateFitsWindow(t *testing.T) {
	series := []float64{0.1, 0.2, 0.3, 0.4}
	out := Decimate(series, 1, 10, 100)

	if len(out) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(out))
	}
	if out[0].Gen != 1 || out[0].Min != 0.2 || out[2].Last != 0.4 {
		t.Errorf("unexpected buckets %+v", out)
	}
}

func TestDecimateReduces(t *testing.T) {
	series := make([]float64, 1001)
	for i := range series {
		series[i] = float64(i) / 1000
	}

	out := Decimate(series, 0, 1000, 10)
	if len(out) != 10 {
		t.Fatalf("expected 10 buckets, got %d", len(out))
	}
	if out[0].First != 0 || out[9].Last != 1 {
		t.Errorf("expected buckets to cover the whole window, got first=%f last=%f", out[0].First, out[9].Last)
	}
	for i, b := range out {
		if b.Min > b.Max {
			t.Errorf("bucket %d: min %f > max %f", i, b.Min, b.Max)
		}
		if i > 0 && b.Gen <= out[i-1].Gen {
			t.Errorf("bucket %d: generations not increasing", i)
		}
	}
}

func TestDecimatePropagatesNaN(t *testing.T) {
	series := []float64{0.5, 0.5, math.NaN(), math.NaN()}
	out := Decimate(series, 0, 3, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(out))
	}
	if math.IsNaN(out[0].Max) {
		t.Error("first bucket should be finite")
	}
	if !math.IsNaN(out[1].Max) {
		t.Error("second bucket should carry NaN")
	}
}

func TestDecimateEmpty(t *testing.T) {
	if out := Decimate(nil, 0, 10, 5); out != nil {
		t.Errorf("expected nil for empty series, got %v", out)
	}
	if out := Decimate([]float64{1, 2}, 0, 1, 0); out != nil {
		t.Errorf("expected nil for zero buckets, got %v", out)
	}
}
