package config

import "math"

// Presets capture the pendulum regimes used throughout the studies: free
// oscillation, damping strengths and the drive amplitudes that carry the
// system from periodic motion into chaos.
var Presets = map[string]*Config{
	"small": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, Theta: 0.01, Dt: DefaultDt, Duration: 20 * math.Pi},
	},
	"large": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, Theta: 3.0, Dt: DefaultDt, Duration: 20 * math.Pi},
	},
	"damped": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, Q: 1, Theta: 0.5, Dt: DefaultDt, Duration: 60},
	},
	"overdamped": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, Q: 10, Theta: 0.5, Dt: DefaultDt, Duration: 60},
	},
	"driven": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, DriveFreq: DefaultDriveFreq, Q: 0.5, DriveAmp: 0.5, Theta: 0.01, Dt: DefaultDt, Duration: 200},
	},
	"resonant": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, DriveFreq: DefaultDriveFreq, Q: 0.5, DriveAmp: 1.2, Theta: 0.01, Dt: DefaultDt, Duration: 200},
	},
	"chaotic": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, DriveFreq: DefaultDriveFreq, Q: 0.5, DriveAmp: 1.465, Theta: 0.01, Dt: DefaultDt, Duration: 400},
	},
	"sensitive": {
		Integrator: "rk4", FiguresDir: DefaultFiguresDir,
		Pendulum: PendulumConfig{Omega0: 1, DriveFreq: DefaultDriveFreq, Q: 0.5, DriveAmp: 1.465, Theta: 0.2, Dt: DefaultDt, Duration: 400},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
