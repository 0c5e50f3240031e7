// Package infrastructure assembles the shared systems every domain component
// depends on: lifecycle coordination, logging, and the optional database.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/pkg/database"
	"github.com/JaimeStill/route-finder/pkg/lifecycle"
	"github.com/JaimeStill/route-finder/pkg/logging"
)

// Infrastructure holds the core systems. Database is nil when search history
// is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates the systems without starting them. Logs are written to w.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging, w),
	}

	if cfg.History.Enabled {
		db, err := database.New(&cfg.History.Database, infra.Logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start connects the systems that need it and registers their shutdown hooks.
func (i *Infrastructure) Start() error {
	if i.Database == nil {
		return nil
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
