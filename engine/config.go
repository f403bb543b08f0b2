package engine

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simweave/simweave/logging"
)

// Config is the YAML-loadable scenario configuration consumed by drivers
// (CLI, notebooks) that construct environments from files rather than code.
type Config struct {
	// Year is the initial clock value.
	Year int `yaml:"year"`
	// Steps is how many steps a driver should run.
	Steps int `yaml:"steps"`
	// Seed initializes the environment's random source.
	Seed int64 `yaml:"seed"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is json or text.
	LogFormat string `yaml:"log_format"`
	// ReportDB, when set, is the path of a SQLite file to persist report
	// snapshots to in addition to the in-memory history.
	ReportDB string `yaml:"report_db"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Year:      2020,
		Steps:     1,
		Seed:      1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Steps < 0 {
		return cfg, fmt.Errorf("config: steps must not be negative, got %d", cfg.Steps)
	}
	return cfg, nil
}

// Apply transfers the config onto engine options. Sinks are left to the
// driver since opening them can fail.
func (c Config) Apply(o *Options) {
	o.Year = c.Year
	o.Rand = rand.New(rand.NewSource(c.Seed))
	o.Logger = logging.NewSimLogger(logging.ParseLevel(c.LogLevel), c.LogFormat, false)
}
