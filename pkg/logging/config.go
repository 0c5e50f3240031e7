package logging

import (
	"fmt"
	"os"
	"strconv"
)

// Env names the environment variables read by Config.Finalize.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// Config selects the slog handler built by New.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`

	// AddSource annotates each record with the calling file and line.
	AddSource bool `toml:"add_source"`
}

// Finalize fills unset fields, applies env overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if err := c.fromEnv(env); err != nil {
			return err
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge copies the fields an overlay file sets. AddSource can only be
// switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = ParseLevel(string(overlay.Level))
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	c.AddSource = c.AddSource || overlay.AddSource
}

func (c *Config) fromEnv(env *Env) error {
	if v, ok := os.LookupEnv(env.Level); ok && v != "" {
		c.Level = ParseLevel(v)
	}
	if v, ok := os.LookupEnv(env.Format); ok && v != "" {
		c.Format = Format(v)
	}
	if v, ok := os.LookupEnv(env.AddSource); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.AddSource, err)
		}
		c.AddSource = b
	}
	return nil
}
