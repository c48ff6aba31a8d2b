package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/hawkdove/config"
	"github.com/pthm-cable/hawkdove/dynamics"
)

// TwoStrategyRow is one generation of a Hawk-Dove trajectory.
type TwoStrategyRow struct {
	Generation int     `csv:"generation"`
	Hawks      float64 `csv:"hawks"`
	Doves      float64 `csv:"doves"`
}

// ThreeStrategyRow is one generation of a Hawk-Dove-Bourgeois trajectory.
type ThreeStrategyRow struct {
	Generation int     `csv:"generation"`
	Hawks      float64 `csv:"hawks"`
	Doves      float64 `csv:"doves"`
	Bourgeois  float64 `csv:"bourgeois"`
}

// TwoStrategyRows flattens a trajectory into per-generation rows.
func TwoStrategyRows(tr *dynamics.Trajectory) []TwoStrategyRow {
	hawks, doves := tr.Series(dynamics.Hawk), tr.Series(dynamics.Dove)
	rows := make([]TwoStrategyRow, tr.Len())
	for g := range rows {
		rows[g] = TwoStrategyRow{Generation: g, Hawks: hawks[g], Doves: doves[g]}
	}
	return rows
}

// ThreeStrategyRows flattens a trajectory into per-generation rows.
func ThreeStrategyRows(tr *dynamics.Trajectory) []ThreeStrategyRow {
	hawks, doves := tr.Series(dynamics.Hawk), tr.Series(dynamics.Dove)
	bourgeois := tr.Series(dynamics.Bourgeois)
	rows := make([]ThreeStrategyRow, tr.Len())
	for g := range rows {
		rows[g] = ThreeStrategyRow{Generation: g, Hawks: hawks[g], Doves: doves[g], Bourgeois: bourgeois[g]}
	}
	return rows
}

// OutputManager writes run artifacts into an output directory.
type OutputManager struct {
	dir            string
	trajectoryFile string
	configFile     string
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string, names config.OutputConfig) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &OutputManager{
		dir:            dir,
		trajectoryFile: names.TrajectoryFile,
		configFile:     names.ConfigFile,
	}, nil
}

// WriteConfig saves the configuration used for the run as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, om.configFile))
}

// WriteTrajectory writes every generation of tr as one CSV row. The
// column set depends on how many strategies the trajectory holds.
func (om *OutputManager) WriteTrajectory(tr *dynamics.Trajectory) error {
	if om == nil {
		return nil
	}

	path := filepath.Join(om.dir, om.trajectoryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", om.trajectoryFile, err)
	}
	defer f.Close()

	switch n := len(tr.Strategies()); n {
	case 2:
		err = gocsv.Marshal(TwoStrategyRows(tr), f)
	case 3:
		err = gocsv.Marshal(ThreeStrategyRows(tr), f)
	default:
		return fmt.Errorf("writing trajectory: unsupported strategy count %d", n)
	}
	if err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}

	return f.Close()
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}
