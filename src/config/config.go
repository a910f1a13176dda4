package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"time"

	"elevsim/src/elev"

	"github.com/joho/godotenv"
)

const (
	DefaultNumCars    = 2
	DefaultTicks      = 10
	DefaultTickPeriod = 1 * time.Second
	DefaultEnvFile    = ".env"
)

const (
	EnvCars       = "ELEVSIM_CARS"
	EnvTicks      = "ELEVSIM_TICKS"
	EnvTickPeriod = "ELEVSIM_TICK_PERIOD"
	EnvLogLevel   = "ELEVSIM_LOG_LEVEL"
	EnvLogFile    = "ELEVSIM_LOG_FILE"
	EnvStraddle   = "ELEVSIM_STRADDLE"
)

type Config struct {
	NumCars    int
	Ticks      int
	TickPeriod time.Duration
	LogLevel   slog.Level
	LogFile    string
	Straddle   elev.StraddlePolicy
}

func Default() Config {
	return Config{
		NumCars:    DefaultNumCars,
		Ticks:      DefaultTicks,
		TickPeriod: DefaultTickPeriod,
		LogLevel:   slog.LevelInfo,
		Straddle:   elev.KeepDirection,
	}
}

// Load reads envPath on top of the defaults. A missing file is not an error.
func Load(envPath string) (Config, error) {
	cfg := Default()

	env, err := godotenv.Read(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", envPath, err)
	}
	if err := cfg.apply(env); err != nil {
		return cfg, fmt.Errorf("%s: %w", envPath, err)
	}
	return cfg, nil
}

func (cfg *Config) apply(env map[string]string) error {
	if v, ok := env[EnvCars]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid car count %q", EnvCars, v)
		}
		cfg.NumCars = n
	}
	if v, ok := env[EnvTicks]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid tick count %q", EnvTicks, v)
		}
		cfg.Ticks = n
	}
	if v, ok := env[EnvTickPeriod]; ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid duration %q", EnvTickPeriod, v)
		}
		cfg.TickPeriod = d
	}
	if v, ok := env[EnvLogLevel]; ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v, ok := env[EnvLogFile]; ok {
		cfg.LogFile = v
	}
	if v, ok := env[EnvStraddle]; ok {
		straddle, err := elev.ParseStraddlePolicy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStraddle, err)
		}
		cfg.Straddle = straddle
	}
	return nil
}

// ParseLogLevel accepts the slog level names, e.g. "debug" or "WARN".
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
