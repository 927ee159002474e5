// Package config provides configuration loading and validation for the
// intervalues CLI.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidCount   = errors.New("span count must be positive")
	ErrInvalidBound   = errors.New("max bound must be positive")
	ErrInvalidWeight  = errors.New("max weight must be positive")
	ErrInvalidRounds  = errors.New("rounds must be positive")
	ErrInvalidBackend = errors.New("unknown numeric backend")
	ErrInvalidSweep   = errors.New("sweep range must ascend with a positive step")
)

// Backends selectable for the benchmark.
var Backends = []string{"int", "float", "decimal", "fixed", "rat"}

// Default configuration values.
const (
	defaultCount     = 100000
	defaultMaxBound  = 1000
	defaultMaxWeight = 10
	defaultSeed      = 42
	defaultRounds    = 10
	defaultBackend   = "int"
)

// Config holds all configuration for the intervalues CLI.
type Config struct {
	Bench   BenchConfig   `mapstructure:"bench"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BenchConfig holds benchmark-specific configuration.
type BenchConfig struct {
	Backend   string      `mapstructure:"backend"`
	Plot      string      `mapstructure:"plot"`
	Sweep     SweepConfig `mapstructure:"sweep"`
	Count     int         `mapstructure:"count"`
	MaxBound  int64       `mapstructure:"max_bound"`
	MaxWeight int64       `mapstructure:"max_weight"`
	Seed      int64       `mapstructure:"seed"`
	Rounds    int         `mapstructure:"rounds"`
}

// SweepConfig describes the span-count sweep: benchmark at From, From+Step,
// ... up to To. A zero To disables the sweep.
type SweepConfig struct {
	From int `mapstructure:"from"`
	To   int `mapstructure:"to"`
	Step int `mapstructure:"step"`
}

// Enabled reports whether a sweep was requested.
func (s SweepConfig) Enabled() bool {
	return s.To > 0
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/intervalues")
	}

	viperCfg.SetEnvPrefix("INTERVALUES")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("bench.count", defaultCount)
	viperCfg.SetDefault("bench.max_bound", defaultMaxBound)
	viperCfg.SetDefault("bench.max_weight", defaultMaxWeight)
	viperCfg.SetDefault("bench.seed", defaultSeed)
	viperCfg.SetDefault("bench.rounds", defaultRounds)
	viperCfg.SetDefault("bench.backend", defaultBackend)
	viperCfg.SetDefault("bench.sweep.from", 0)
	viperCfg.SetDefault("bench.sweep.to", 0)
	viperCfg.SetDefault("bench.sweep.step", 0)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	bench := config.Bench

	if bench.Count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, bench.Count)
	}

	if bench.MaxBound <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBound, bench.MaxBound)
	}

	if bench.MaxWeight <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, bench.MaxWeight)
	}

	if bench.Rounds <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, bench.Rounds)
	}

	if !slices.Contains(Backends, bench.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, bench.Backend)
	}

	if bench.Sweep.Enabled() && (bench.Sweep.Step <= 0 || bench.Sweep.From <= 0 || bench.Sweep.From > bench.Sweep.To) {
		return fmt.Errorf("%w: from=%d to=%d step=%d",
			ErrInvalidSweep, bench.Sweep.From, bench.Sweep.To, bench.Sweep.Step)
	}

	return nil
}
