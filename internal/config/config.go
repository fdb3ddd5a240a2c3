// Package config handles application configuration from CLI flags and environment variables.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// TickInterval is the period of the engine update loop.
	TickInterval time.Duration

	// Seed is the master seed for random streams. Zero means derive one from the clock.
	Seed uint64

	// MinDelay and MaxDelay bound the random delay between picks.
	MinDelay time.Duration
	MaxDelay time.Duration

	// ReportInterval is the delay between late-phase reports.
	ReportInterval time.Duration

	// HistorySize is how many recent picks the sampler remembers.
	HistorySize int

	// HealthPort is the port for health check endpoints.
	HealthPort int
}

// Default values.
const (
	DefaultTickInterval   = 50 * time.Millisecond
	DefaultSeed           = 0
	DefaultMinDelay       = 200 * time.Millisecond
	DefaultMaxDelay       = 2 * time.Second
	DefaultReportInterval = 5 * time.Second
	DefaultHistorySize    = 32
	DefaultHealthPort     = 8081
)

// Load parses configuration from flags and environment variables.
// Environment variables override CLI flag defaults.
func Load() *Config {
	cfg := &Config{}

	flag.DurationVar(&cfg.TickInterval, "tick-interval", DefaultTickInterval,
		"Engine update period (env: BRIGSBY_TICK_INTERVAL)")
	flag.Uint64Var(&cfg.Seed, "seed", DefaultSeed,
		"Master random seed, 0 for time-based (env: BRIGSBY_SEED)")
	flag.DurationVar(&cfg.MinDelay, "min-delay", DefaultMinDelay,
		"Minimum delay between picks (env: BRIGSBY_MIN_DELAY)")
	flag.DurationVar(&cfg.MaxDelay, "max-delay", DefaultMaxDelay,
		"Maximum delay between picks (env: BRIGSBY_MAX_DELAY)")
	flag.DurationVar(&cfg.ReportInterval, "report-interval", DefaultReportInterval,
		"Delay between reports (env: BRIGSBY_REPORT_INTERVAL)")
	flag.IntVar(&cfg.HistorySize, "history-size", DefaultHistorySize,
		"Number of recent picks to remember (env: BRIGSBY_HISTORY_SIZE)")
	flag.IntVar(&cfg.HealthPort, "health-port", DefaultHealthPort,
		"Port for health check server (env: BRIGSBY_HEALTH_PORT)")

	flag.Parse()

	cfg.applyEnvOverrides()
	cfg.normalize()

	return cfg
}

// LoadWithDefaults returns a Config with default values without parsing flags.
// Useful for testing.
func LoadWithDefaults() *Config {
	cfg := &Config{
		TickInterval:   DefaultTickInterval,
		Seed:           DefaultSeed,
		MinDelay:       DefaultMinDelay,
		MaxDelay:       DefaultMaxDelay,
		ReportInterval: DefaultReportInterval,
		HistorySize:    DefaultHistorySize,
		HealthPort:     DefaultHealthPort,
	}
	cfg.applyEnvOverrides()
	cfg.normalize()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BRIGSBY_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.TickInterval = d
		}
	}

	if v := os.Getenv("BRIGSBY_SEED"); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = u
		}
	}

	if v := os.Getenv("BRIGSBY_MIN_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.MinDelay = d
		}
	}

	if v := os.Getenv("BRIGSBY_MAX_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.MaxDelay = d
		}
	}

	if v := os.Getenv("BRIGSBY_REPORT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.ReportInterval = d
		}
	}

	if v := os.Getenv("BRIGSBY_HISTORY_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			c.HistorySize = i
		}
	}

	if v := os.Getenv("BRIGSBY_HEALTH_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 && i < 65536 {
			c.HealthPort = i
		}
	}
}

// normalize keeps MinDelay <= MaxDelay.
func (c *Config) normalize() {
	if c.MaxDelay < c.MinDelay {
		c.MaxDelay = c.MinDelay
	}
}
