package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	// EnvWebMaxFormSize overrides the maximum accepted search form body size.
	EnvWebMaxFormSize = "WEB_MAX_FORM_SIZE"
)

// WebConfig contains settings for the HTML search interface.
type WebConfig struct {
	// MaxFormSize bounds POST /results bodies, in human-readable units.
	// Default: "64KB"
	MaxFormSize    string `toml:"max_form_size"`
	maxFormSizeVal int64
}

// MaxFormSizeBytes returns the parsed MaxFormSize. Valid after Finalize.
func (c *WebConfig) MaxFormSizeBytes() int64 {
	return c.maxFormSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the web configuration.
func (c *WebConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}
}

func (c *WebConfig) loadDefaults() {
	if c.MaxFormSize == "" {
		c.MaxFormSize = "64KB"
	}
}

func (c *WebConfig) loadEnv() {
	if v := os.Getenv(EnvWebMaxFormSize); v != "" {
		c.MaxFormSize = v
	}
}

func (c *WebConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxFormSize)
	if err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_form_size must be positive")
	}
	c.maxFormSizeVal = size
	return nil
}
