// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/hawkdove/dynamics"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters.
type Config struct {
	TwoStrategy   TwoStrategyConfig   `yaml:"two_strategy"`
	ThreeStrategy ThreeStrategyConfig `yaml:"three_strategy"`
	Screen        ScreenConfig        `yaml:"screen"`
	Chart         ChartConfig         `yaml:"chart"`
	Output        OutputConfig        `yaml:"output"`
}

// TwoStrategyConfig holds Hawk-Dove game parameters.
type TwoStrategyConfig struct {
	HawkProportion float64 `yaml:"hawk_proportion"` // Doves are the remainder
	Generations    int     `yaml:"generations"`
	InitialFitness float64 `yaml:"initial_fitness"`
	Value          float64 `yaml:"value"` // Payoff for winning a contest
	Cost           float64 `yaml:"cost"`  // Payoff lost when injured
}

// ThreeStrategyConfig holds Hawk-Dove-Bourgeois game parameters.
type ThreeStrategyConfig struct {
	HawkProportion float64 `yaml:"hawk_proportion"`
	DoveProportion float64 `yaml:"dove_proportion"` // Bourgeois are the remainder
	Generations    int     `yaml:"generations"`
	InitialFitness float64 `yaml:"initial_fitness"`
	Value          float64 `yaml:"value"`
	Cost           float64 `yaml:"cost"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ChartConfig holds chart layout and navigation settings.
type ChartConfig struct {
	Title    string  `yaml:"title"`
	XLabel   string  `yaml:"x_label"`
	YLabel   string  `yaml:"y_label"`
	Margin   int     `yaml:"margin"`    // Pixels between window edge and plot area
	MaxZoom  float64 `yaml:"max_zoom"`  // Largest horizontal magnification
	PanSpeed float64 `yaml:"pan_speed"` // Screen pixels per second for keyboard pan
	XTicks   int     `yaml:"x_ticks"`
	YTicks   int     `yaml:"y_ticks"`
}

// OutputConfig holds file names used inside the output directory.
type OutputConfig struct {
	TrajectoryFile string `yaml:"trajectory_file"`
	ConfigFile     string `yaml:"config_file"`
}

// Params converts the config block into simulation parameters.
func (c TwoStrategyConfig) Params() dynamics.TwoStrategyParams {
	return dynamics.TwoStrategyParams{
		HawkProportion: c.HawkProportion,
		Generations:    c.Generations,
		InitialFitness: c.InitialFitness,
		Value:          c.Value,
		Cost:           c.Cost,
	}
}

// Params converts the config block into simulation parameters.
func (c ThreeStrategyConfig) Params() dynamics.ThreeStrategyParams {
	return dynamics.ThreeStrategyParams{
		HawkProportion: c.HawkProportion,
		DoveProportion: c.DoveProportion,
		Generations:    c.Generations,
		InitialFitness: c.InitialFitness,
		Value:          c.Value,
		Cost:           c.Cost,
	}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills layout values a user file may have zeroed.
func (c *Config) applyDefaults() {
	if c.Chart.XTicks <= 0 {
		c.Chart.XTicks = 10
	}
	if c.Chart.YTicks <= 0 {
		c.Chart.YTicks = 5
	}
	if c.Chart.MaxZoom < 1 {
		c.Chart.MaxZoom = 1
	}
	if c.Output.TrajectoryFile == "" {
		c.Output.TrajectoryFile = "trajectory.csv"
	}
	if c.Output.ConfigFile == "" {
		c.Output.ConfigFile = "config.yaml"
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
