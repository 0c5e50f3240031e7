package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/route-finder/pkg/database"
	"github.com/JaimeStill/route-finder/pkg/pagination"
	"github.com/robfig/cron/v3"
)

const (
	// EnvHistoryEnabled toggles the search history log.
	EnvHistoryEnabled = "HISTORY_ENABLED"

	EnvHistoryRetention     = "HISTORY_RETENTION"
	EnvHistoryPurgeSchedule = "HISTORY_PURGE_SCHEDULE"
	EnvHistoryExportLimit   = "HISTORY_EXPORT_LIMIT"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "HISTORY_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "HISTORY_PAGINATION_MAX_PAGE_SIZE",
}

// HistoryConfig contains the optional search history log settings.
// The database section is only validated when history is enabled.
type HistoryConfig struct {
	Enabled       bool              `toml:"enabled"`
	Retention     string            `toml:"retention"`
	PurgeSchedule string            `toml:"purge_schedule"`
	ExportLimit   int               `toml:"export_limit"`
	Database      database.Config   `toml:"database"`
	Pagination    pagination.Config `toml:"pagination"`
}

// RetentionDuration parses and returns the retention window as a time.Duration.
func (c *HistoryConfig) RetentionDuration() time.Duration {
	d, _ := time.ParseDuration(c.Retention)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the history configuration.
func (c *HistoryConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if !c.Enabled {
		return nil
	}
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
// An overlay can enable history but not disable it; use HISTORY_ENABLED for that.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Retention != "" {
		c.Retention = overlay.Retention
	}
	if overlay.PurgeSchedule != "" {
		c.PurgeSchedule = overlay.PurgeSchedule
	}
	if overlay.ExportLimit != 0 {
		c.ExportLimit = overlay.ExportLimit
	}
	c.Database.Merge(&overlay.Database)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *HistoryConfig) loadDefaults() {
	if c.Retention == "" {
		c.Retention = "720h"
	}
	if c.PurgeSchedule == "" {
		c.PurgeSchedule = "@hourly"
	}
	if c.ExportLimit == 0 {
		c.ExportLimit = 1000
	}
}

func (c *HistoryConfig) loadEnv() {
	if v := os.Getenv(EnvHistoryEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvHistoryRetention); v != "" {
		c.Retention = v
	}
	if v := os.Getenv(EnvHistoryPurgeSchedule); v != "" {
		c.PurgeSchedule = v
	}
	if v := os.Getenv(EnvHistoryExportLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ExportLimit = n
		}
	}
}

func (c *HistoryConfig) validate() error {
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return fmt.Errorf("invalid retention: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("retention must be positive")
	}
	if _, err := cron.ParseStandard(c.PurgeSchedule); err != nil {
		return fmt.Errorf("invalid purge_schedule: %w", err)
	}
	if c.ExportLimit < 1 {
		return fmt.Errorf("export_limit must be positive")
	}
	return nil
}
