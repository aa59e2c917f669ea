// Package config provides configuration loading and access for the
// agent and its simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every documented simulation and network parameter
// (spec.md §6 "Configurable options").
type Config struct {
	Network    NetworkConfig    `yaml:"network"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// NetworkConfig mirrors network.Config, kept as a separate YAML-tagged
// struct so the network package itself carries no serialization
// dependency.
type NetworkConfig struct {
	RecoveryStateEnergyRatio float32 `yaml:"recovery_state_energy_ratio"`
	StateHistorySize         int     `yaml:"state_history_size"`
	DecayCoefficient         float64 `yaml:"decay_coefficient"`
	ExplorationRate          float64 `yaml:"exploration_rate"`
	StrengtheningExponent    float64 `yaml:"strengthening_exponent"`
	RewardPeriod             int     `yaml:"reward_fn_period"`
	RewardSignalPeriod       int     `yaml:"reward_fn_signal_period"`
	PunishPeriod             int     `yaml:"punish_fn_period"`
	PunishMinSignalPeriod    int     `yaml:"punish_fn_min_signal_period"`
	PunishMaxSignalPeriod    int     `yaml:"punish_fn_max_signal_period"`
	KValue                   float64 `yaml:"k_value"`
}

// SimulationConfig holds the frame geometry, RNG seed, sensor/motor
// envelopes and element geometry spec.md §6 "Simulation" lists.
type SimulationConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Frequency float64 `yaml:"frequency"`
	Seed      int64   `yaml:"seed"`

	SensorMinFrequency float64 `yaml:"sensor_min_frequency"`
	SensorMaxFrequency float64 `yaml:"sensor_max_frequency"`

	AgentSpeed          float64 `yaml:"agent_speed"`
	ControllerThreshold float64 `yaml:"controller_threshold"`

	BallRadius   float64 `yaml:"ball_radius"`
	BallSpeedMin float64 `yaml:"ball_speed_min"`
	BallSpeedMax float64 `yaml:"ball_speed_max"`

	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}
