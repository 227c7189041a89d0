package config

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("RINGBALLS_TEST_VALUE", "set")
	if got := GetEnv("RINGBALLS_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("RINGBALLS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("RINGBALLS_TEST_INT", "42")
	if n, err := GetEnvInt("RINGBALLS_TEST_INT", 1); err != nil || n != 42 {
		t.Fatalf("GetEnvInt = %d, %v", n, err)
	}
	if n, err := GetEnvInt("RINGBALLS_TEST_MISSING", 7); err != nil || n != 7 {
		t.Fatalf("GetEnvInt fallback = %d, %v", n, err)
	}

	t.Setenv("RINGBALLS_TEST_INT", "forty")
	if _, err := GetEnvInt("RINGBALLS_TEST_INT", 1); !errors.Is(err, ErrInvalidSetting) {
		t.Fatalf("GetEnvInt(non-numeric) = %v, want ErrInvalidSetting", err)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("RINGBALLS_TEST_DURATION", "90s")
	if d, err := GetEnvDuration("RINGBALLS_TEST_DURATION", time.Minute); err != nil || d != 90*time.Second {
		t.Fatalf("GetEnvDuration = %v, %v", d, err)
	}
	if d, err := GetEnvDuration("RINGBALLS_TEST_MISSING", time.Minute); err != nil || d != time.Minute {
		t.Fatalf("GetEnvDuration fallback = %v, %v", d, err)
	}

	t.Setenv("RINGBALLS_TEST_DURATION", "soon")
	if _, err := GetEnvDuration("RINGBALLS_TEST_DURATION", time.Minute); !errors.Is(err, ErrInvalidSetting) {
		t.Fatalf("GetEnvDuration(invalid) = %v, want ErrInvalidSetting", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"RINGBALLS_WIDTH", "RINGBALLS_HEIGHT", "RINGBALLS_SEED", "RINGBALLS_FPS", "RINGBALLS_LOG", "RINGBALLS_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	// t.Setenv cannot unset, so set the values Load would default to.
	t.Setenv("RINGBALLS_WIDTH", "120")
	t.Setenv("RINGBALLS_HEIGHT", "80")
	t.Setenv("RINGBALLS_SEED", "0")
	t.Setenv("RINGBALLS_FPS", "60")
	t.Setenv("RINGBALLS_LOG_LEVEL", "info")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := Settings{Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, LogLevel: log.InfoLevel}
	if s != want {
		t.Fatalf("Load() = %+v, want %+v", s, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RINGBALLS_WIDTH", "200")
	t.Setenv("RINGBALLS_HEIGHT", "100")
	t.Setenv("RINGBALLS_SEED", "1234")
	t.Setenv("RINGBALLS_FPS", "30")
	t.Setenv("RINGBALLS_LOG", "/tmp/ringballs.log")
	t.Setenv("RINGBALLS_LOG_LEVEL", "debug")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := Settings{Width: 200, Height: 100, Seed: 1234, FPS: 30, LogFile: "/tmp/ringballs.log", LogLevel: log.DebugLevel}
	if s != want {
		t.Fatalf("Load() = %+v, want %+v", s, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RINGBALLS_WIDTH", "0"},
		{"RINGBALLS_HEIGHT", "-5"},
		{"RINGBALLS_FPS", "0"},
		{"RINGBALLS_SEED", "abc"},
		{"RINGBALLS_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("RINGBALLS_WIDTH", "120")
			t.Setenv("RINGBALLS_HEIGHT", "80")
			t.Setenv("RINGBALLS_SEED", "0")
			t.Setenv("RINGBALLS_FPS", "60")
			t.Setenv("RINGBALLS_LOG_LEVEL", "info")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); !errors.Is(err, ErrInvalidSetting) {
				t.Fatalf("Load() with %s=%q = %v, want ErrInvalidSetting", tt.key, tt.value, err)
			}
		})
	}
}
