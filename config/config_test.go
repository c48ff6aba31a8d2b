package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/hawkdove/dynamics"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	two := cfg.TwoStrategy
	if two.HawkProportion != 1.0/3 || two.Generations != 100000 || two.InitialFitness != 3 || two.Value != 1 || two.Cost != 3 {
		t.Errorf("unexpected two-strategy defaults: %+v", two)
	}

	three := cfg.ThreeStrategy
	if three.HawkProportion != 0.5 || three.DoveProportion != 0.6 || three.Generations != 100 || three.InitialFitness != 2 {
		t.Errorf("unexpected three-strategy defaults: %+v", three)
	}

	if cfg.Chart.XLabel != "Number of Generations" || cfg.Chart.YLabel != "Proportion of Population" {
		t.Errorf("unexpected axis labels: %q, %q", cfg.Chart.XLabel, cfg.Chart.YLabel)
	}
}

func TestDefaultThreeStrategyIsRejected(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	_, err = cfg.ThreeStrategy.Params().Simulate()
	if !errors.Is(err, dynamics.ErrInvalidProportion) {
		t.Errorf("expected the default three-strategy example to fail validation, got %v", err)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := []byte("three_strategy:\n  dove_proportion: 0.3\nchart:\n  x_ticks: 0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ThreeStrategy.DoveProportion != 0.3 {
		t.Errorf("expected overridden dove proportion 0.3, got %v", cfg.ThreeStrategy.DoveProportion)
	}
	if cfg.ThreeStrategy.HawkProportion != 0.5 {
		t.Errorf("expected default hawk proportion to survive merge, got %v", cfg.ThreeStrategy.HawkProportion)
	}
	if cfg.Chart.XTicks != 10 {
		t.Errorf("expected zeroed x_ticks to fall back to 10, got %d", cfg.Chart.XTicks)
	}

	p := cfg.ThreeStrategy.Params()
	if _, err := p.Simulate(); err != nil {
		t.Errorf("expected merged parameters to validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.TwoStrategy.Generations = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TwoStrategy.Generations != 42 {
		t.Errorf("expected generations 42 after roundtrip, got %d", loaded.TwoStrategy.Generations)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg to panic before Init")
		}
	}()
	Cfg()
}
