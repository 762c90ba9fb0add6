package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qkp/qkp"
)

// envPrefix scopes environment overrides: QKP_LOG_LEVEL, QKP_BENCH_RUNS, …
const envPrefix = "QKP"

// Config is the effective CLI configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Solve SolveConfig `mapstructure:"solve"`
	Bench BenchConfig `mapstructure:"bench"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// SolveConfig holds defaults for the solve command.
type SolveConfig struct {
	Algorithm string `mapstructure:"algorithm" validate:"required"`
}

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Runs       int      `mapstructure:"runs"       validate:"min=1"`
	Algorithms []string `mapstructure:"algorithms" validate:"min=1,dive,required"`
}

// newViper returns a viper instance with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("solve.algorithm", qkp.DefaultOptions().Algorithm.String())
	v.SetDefault("bench.runs", 5)

	names := make([]string, 0, 3)
	for _, a := range qkp.Algorithms() {
		names = append(names, a.String())
	}
	v.SetDefault("bench.algorithms", names)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional file, unmarshals and validates.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := qkp.ParseAlgorithm(cfg.Solve.Algorithm); err != nil {
		return Config{}, fmt.Errorf("solve.algorithm: %w", err)
	}
	if _, err := parseAlgorithms(cfg.Bench.Algorithms); err != nil {
		return Config{}, fmt.Errorf("bench.algorithms: %w", err)
	}

	return cfg, nil
}

// parseAlgorithms maps names to algorithms, preserving order.
func parseAlgorithms(names []string) ([]qkp.Algorithm, error) {
	out := make([]qkp.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := qkp.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
