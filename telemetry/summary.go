// Package telemetry records the outcome of a simulation run: a structured
// log summary and CSV/YAML artifacts in an output directory.
package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/hawkdove/dynamics"
)

// RunSummary describes a finished simulation.
type RunSummary struct {
	Model       string
	Generations int
	Strategies  []dynamics.Strategy
	Final       []float64 // proportions after the last generation
	Finite      bool
	Elapsed     time.Duration
}

// NewRunSummary summarizes a trajectory produced by the named model.
func NewRunSummary(model string, tr *dynamics.Trajectory, elapsed time.Duration) RunSummary {
	return RunSummary{
		Model:       model,
		Generations: tr.Generations(),
		Strategies:  tr.Strategies(),
		Final:       tr.Final(),
		Finite:      tr.Finite(),
		Elapsed:     elapsed,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s RunSummary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("model", s.Model),
		slog.Int("generations", s.Generations),
		slog.Bool("finite", s.Finite),
		slog.Duration("elapsed", s.Elapsed),
	}
	final := make([]any, 0, len(s.Strategies))
	for i, strat := range s.Strategies {
		final = append(final, slog.Float64(strat.String(), s.Final[i]))
	}
	attrs = append(attrs, slog.Group("final", final...))
	return slog.GroupValue(attrs...)
}
