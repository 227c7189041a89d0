// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidSetting is returned when an environment variable holds an unusable value.
var ErrInvalidSetting = errors.New("invalid setting")

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, key, value, err)
	}
	return n, nil
}

// GetEnvInt64 is GetEnvInt for 64-bit values.
func GetEnvInt64(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, key, value, err)
	}
	return n, nil
}

// GetEnvDuration parses the environment variable named by the key with
// time.ParseDuration, or returns fallback if the variable is not set.
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, key, value, err)
	}
	return d, nil
}

// Defaults for Settings.
const (
	DefaultWidth  = 120 // Logical field width
	DefaultHeight = 80  // Logical field height (in sub-pixels, so 40 terminal rows)
	DefaultFPS    = 60
)

// Settings is the runtime configuration read from the environment.
type Settings struct {
	Width    int       // RINGBALLS_WIDTH
	Height   int       // RINGBALLS_HEIGHT
	Seed     int64     // RINGBALLS_SEED; 0 seeds from the clock
	FPS      int       // RINGBALLS_FPS
	LogFile  string    // RINGBALLS_LOG; empty discards game logs
	LogLevel log.Level // RINGBALLS_LOG_LEVEL
}

// Load reads Settings from the environment and validates them.
func Load() (Settings, error) {
	var s Settings
	var err error

	if s.Width, err = GetEnvInt("RINGBALLS_WIDTH", DefaultWidth); err != nil {
		return Settings{}, err
	}
	if s.Height, err = GetEnvInt("RINGBALLS_HEIGHT", DefaultHeight); err != nil {
		return Settings{}, err
	}
	if s.Seed, err = GetEnvInt64("RINGBALLS_SEED", 0); err != nil {
		return Settings{}, err
	}
	if s.FPS, err = GetEnvInt("RINGBALLS_FPS", DefaultFPS); err != nil {
		return Settings{}, err
	}
	s.LogFile = GetEnv("RINGBALLS_LOG", "")

	levelName := GetEnv("RINGBALLS_LOG_LEVEL", "info")
	if s.LogLevel, err = log.ParseLevel(levelName); err != nil {
		return Settings{}, fmt.Errorf("%w: RINGBALLS_LOG_LEVEL=%q: %v", ErrInvalidSetting, levelName, err)
	}

	return s, s.Validate()
}

// Validate checks that dimensions and frame rate are positive.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: field %dx%d", ErrInvalidSetting, s.Width, s.Height)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidSetting, s.FPS)
	}
	return nil
}
