package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvFinderMode overrides the route finder mode.
const EnvFinderMode = "FINDER_MODE"

// FinderMode selects where routes come from.
type FinderMode string

const (
	// FinderModeMock serves the fixed sample routes.
	FinderModeMock FinderMode = "mock"

	// FinderModeLive queries the flight-offers provider.
	FinderModeLive FinderMode = "live"
)

// FinderConfig selects the route finder variant.
type FinderConfig struct {
	Mode FinderMode `toml:"mode"`
}

// Finalize applies defaults, loads environment overrides, and validates the finder configuration.
func (c *FinderConfig) Finalize() error {
	if c.Mode == "" {
		c.Mode = FinderModeMock
	}
	if v := os.Getenv(EnvFinderMode); v != "" {
		c.Mode = FinderMode(strings.ToLower(v))
	}

	switch c.Mode {
	case FinderModeMock, FinderModeLive:
		return nil
	default:
		return fmt.Errorf("invalid mode: %s (must be mock or live)", c.Mode)
	}
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *FinderConfig) Merge(overlay *FinderConfig) {
	if overlay.Mode != "" {
		c.Mode = overlay.Mode
	}
}
