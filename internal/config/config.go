package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tritris/internal/domain"
)

const (
	EnvConfigPath = "TRITRIS_CONFIG"
	EnvSeed       = "TRITRIS_SEED"
	EnvLogFile    = "TRITRIS_LOG"
	EnvLogLevel   = "TRITRIS_LOG_LEVEL"
)

type Config struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	FallIntervalMs    int     `json:"fall_interval_ms"`
	MinFallIntervalMs int     `json:"min_fall_interval_ms"`
	SpeedUpFactor     float64 `json:"speed_up_factor"`
	// PollIntervalMs is how long each tick waits for a key.
	PollIntervalMs int `json:"poll_interval_ms"`
	// Seed fixes the piece and switch sequence; 0 seeds from the clock.
	Seed     int64  `json:"seed"`
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
}

func Default() Config {
	return Config{
		Width:             domain.DefaultWidth,
		Height:            domain.DefaultHeight,
		FallIntervalMs:    int(domain.DefaultFallInterval / time.Millisecond),
		MinFallIntervalMs: int(domain.DefaultMinFallInterval / time.Millisecond),
		SpeedUpFactor:     domain.DefaultSpeedUpFactor,
		PollIntervalMs:    50,
		LogLevel:          "info",
	}
}

// Load reads a JSON file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv builds the config from TRITRIS_CONFIG (optional file) and the
// TRITRIS_SEED, TRITRIS_LOG and TRITRIS_LOG_LEVEL overrides.
func FromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Width > 40:
		return fmt.Errorf("%w: width %d not in [4,40]", ErrInvalid, c.Width)
	case c.Height < 4 || c.Height > 60:
		return fmt.Errorf("%w: height %d not in [4,60]", ErrInvalid, c.Height)
	case c.FallIntervalMs <= 0:
		return fmt.Errorf("%w: fall_interval_ms must be positive", ErrInvalid)
	case c.MinFallIntervalMs <= 0 || c.MinFallIntervalMs > c.FallIntervalMs:
		return fmt.Errorf("%w: min_fall_interval_ms must be in (0, fall_interval_ms]", ErrInvalid)
	case c.SpeedUpFactor <= 0 || c.SpeedUpFactor > 1:
		return fmt.Errorf("%w: speed_up_factor %v not in (0,1]", ErrInvalid, c.SpeedUpFactor)
	case c.PollIntervalMs <= 0:
		return fmt.Errorf("%w: poll_interval_ms must be positive", ErrInvalid)
	}
	return nil
}

func (c Config) Rules() domain.Rules {
	return domain.Rules{
		Width:           c.Width,
		Height:          c.Height,
		FallInterval:    time.Duration(c.FallIntervalMs) * time.Millisecond,
		MinFallInterval: time.Duration(c.MinFallIntervalMs) * time.Millisecond,
		SpeedUpFactor:   c.SpeedUpFactor,
	}
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ResolvedSeed returns Seed, or a clock-derived value when Seed is 0.
func (c Config) ResolvedSeed() uint64 {
	if c.Seed != 0 {
		return uint64(c.Seed)
	}
	return uint64(time.Now().UnixNano())
}
