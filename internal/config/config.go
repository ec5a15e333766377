// Package config reads the service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	AssetPrefix      string
	AllowedOrigins   string
	LogLevel         string
	LogSink          string
	LogFormat        string
	SettleDelay      time.Duration
	PendingTimeout   time.Duration
	WatchdogInterval time.Duration
	RandomSeed       uint64 // 0 = seed from the clock
}

func Default() Config {
	return Config{
		Addr:             "127.0.0.1:3000",
		AllowedOrigins:   "http://localhost:5173",
		LogLevel:         "info",
		LogFormat:        "text",
		SettleDelay:      3 * time.Second,
		PendingTimeout:   2 * time.Minute,
		WatchdogInterval: 30 * time.Second,
	}
}

// Load reads files (default ".env") into the process environment, skipping
// missing ones, then builds the config from the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from getenv, falling back to Default for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid duration %q", key, v)
		}
		*dst = d
		return nil
	}

	str("HUSHR_ADDR", &c.Addr)
	str("HUSHR_ASSET_PREFIX", &c.AssetPrefix)
	str("HUSHR_ALLOWED_ORIGINS", &c.AllowedOrigins)
	str("HUSHR_LOG_LEVEL", &c.LogLevel)
	str("HUSHR_LOG_SINK", &c.LogSink)
	str("HUSHR_LOG_FORMAT", &c.LogFormat)
	if err := dur("HUSHR_SETTLE_DELAY", &c.SettleDelay); err != nil {
		return Config{}, err
	}
	if err := dur("HUSHR_PENDING_TIMEOUT", &c.PendingTimeout); err != nil {
		return Config{}, err
	}
	if err := dur("HUSHR_WATCHDOG_INTERVAL", &c.WatchdogInterval); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(getenv("HUSHR_RANDOM_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("HUSHR_RANDOM_SEED: %w", err)
		}
		c.RandomSeed = seed
	}
	if c.PendingTimeout <= c.SettleDelay {
		return Config{}, fmt.Errorf("HUSHR_PENDING_TIMEOUT (%s) must exceed HUSHR_SETTLE_DELAY (%s)", c.PendingTimeout, c.SettleDelay)
	}
	return c, nil
}

// Origins splits AllowedOrigins on commas and trims each entry.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
