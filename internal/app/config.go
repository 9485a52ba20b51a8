package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"numlab/internal/coins"
	"numlab/internal/montecarlo"
	"numlab/internal/services/change"
	"numlab/internal/services/integration"
)

// ConfigFile is the file name looked up under Home.
const ConfigFile = "numlab.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string            `toml:"-"` // state directory, e.g. $HOME/.numlab
	Log         LogConfig         `toml:"log"`
	Coins       CoinsConfig       `toml:"coins"`
	Integration IntegrationConfig `toml:"integration"`
	Reports     ReportsConfig     `toml:"reports"`
	Server      ServerConfig      `toml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// CoinsConfig holds coin changer settings.
type CoinsConfig struct {
	Denominations []int `toml:"denominations"`
	MaxAmount     int   `toml:"max_amount"`
}

// IntegrationConfig holds Monte Carlo defaults.
type IntegrationConfig struct {
	Function     string  `toml:"function"`
	A            float64 `toml:"a"`
	B            float64 `toml:"b"`
	Samples      int     `toml:"samples"`
	Trials       int     `toml:"trials"`
	GridSize     int     `toml:"grid_size"`
	MaxSamples   int     `toml:"max_samples"`
	Seed         string  `toml:"seed"`
	SampleCounts []int   `toml:"sample_counts"`
	TrialCounts  []int   `toml:"trial_counts"`
	SweepSamples int     `toml:"sweep_samples"`
}

// ReportsConfig controls report persistence.
type ReportsConfig struct {
	Save bool   `toml:"save"`
	Dir  string `toml:"dir"` // default <home>/reports
}

// ServerConfig holds labd settings.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "30s".
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText renders the duration in time.Duration notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Coins: CoinsConfig{
			Denominations: []int{50, 25, 10, 5, 2, 1},
			MaxAmount:     change.DefaultMaxAmount,
		},
		Integration: IntegrationConfig{
			Function:     montecarlo.DefaultFunction,
			A:            0,
			B:            2,
			Samples:      10_000,
			Trials:       50,
			GridSize:     montecarlo.DefaultGridSize,
			MaxSamples:   integration.DefaultMaxSamples,
			SampleCounts: []int{1_000, 10_000, 100_000, 500_000},
			TrialCounts:  []int{1, 10, 50, 100},
			SweepSamples: 5_000,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{60 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; keys
// the Config does not know are.
func Load(path string) (Config, error) {
	cfg := Default()
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ReportsDir returns the directory reports are written to.
func (c Config) ReportsDir() string {
	if c.Reports.Dir != "" {
		return c.Reports.Dir
	}
	return filepath.Join(c.Home, "reports")
}

// Validate checks values a file or flag could have broken.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	for _, d := range c.Coins.Denominations {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("coins.denominations must be positive, got %d", d))
			break
		}
	}
	if c.Coins.MaxAmount > coins.MaxTableAmount {
		errs = append(errs, fmt.Errorf("coins.max_amount must not exceed %d, got %d", coins.MaxTableAmount, c.Coins.MaxAmount))
	}
	if c.Integration.GridSize < 2 {
		errs = append(errs, fmt.Errorf("integration.grid_size must be at least 2, got %d", c.Integration.GridSize))
	}
	if c.Integration.A > c.Integration.B {
		errs = append(errs, fmt.Errorf("integration.a must not exceed integration.b"))
	}
	return errors.Join(errs...)
}
