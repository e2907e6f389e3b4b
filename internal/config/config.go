package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.002
	DefaultDuration   = 60.0
	DefaultTheta      = 0.01
	DefaultOmega0     = 1.0
	DefaultDriveFreq  = 2.0 / 3.0
	DefaultMCDim      = 8
	DefaultMCSamples  = 1 << 14
	DefaultMCTrials   = 25
	DefaultResolution = 64
	DefaultFiguresDir = "figures"
)

type Config struct {
	Integrator string           `yaml:"integrator"`
	FiguresDir string           `yaml:"figures_dir"`
	Pendulum   PendulumConfig   `yaml:"pendulum"`
	MonteCarlo MonteCarloConfig `yaml:"montecarlo"`
	Field      FieldConfig      `yaml:"field"`
}

type PendulumConfig struct {
	Omega0    float64 `yaml:"omega0"`
	DriveFreq float64 `yaml:"drive_freq"`
	Q         float64 `yaml:"q"`
	DriveAmp  float64 `yaml:"drive_amp"`
	Theta     float64 `yaml:"theta"`
	Omega     float64 `yaml:"omega"`
	Dt        float64 `yaml:"dt"`
	Duration  float64 `yaml:"duration"`
}

type MonteCarloConfig struct {
	Dim     int     `yaml:"dim"`
	Side    float64 `yaml:"side"`
	Samples int     `yaml:"samples"`
	Trials  int     `yaml:"trials"`
	Seed    int64   `yaml:"seed"`
}

type FieldConfig struct {
	Radius     float64 `yaml:"radius"`
	Current    float64 `yaml:"current"`
	Resolution int     `yaml:"resolution"`
	Coils      int     `yaml:"coils"`
	Separation float64 `yaml:"separation"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "rk4",
		FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{
			Omega0:    DefaultOmega0,
			DriveFreq: DefaultDriveFreq,
			Theta:     DefaultTheta,
			Dt:        DefaultDt,
			Duration:  DefaultDuration,
		},
		MonteCarlo: MonteCarloConfig{
			Dim:     DefaultMCDim,
			Side:    math.Pi / 8,
			Samples: DefaultMCSamples,
			Trials:  DefaultMCTrials,
			Seed:    42,
		},
		Field: FieldConfig{
			Radius:     1.0,
			Current:    1.0,
			Resolution: DefaultResolution,
			Coils:      2,
			Separation: 1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitState packs the pendulum section's initial condition as a state
// vector of angle and angular velocity.
func (c *Config) InitState() []float64 {
	return []float64{c.Pendulum.Theta, c.Pendulum.Omega}
}
