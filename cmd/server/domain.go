package main

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/history"
	"github.com/JaimeStill/route-finder/internal/infrastructure"
	"github.com/JaimeStill/route-finder/internal/offers"
	"github.com/JaimeStill/route-finder/internal/travel"
)

// Domain holds the application systems. History and Retention are nil when
// search history is disabled.
type Domain struct {
	Service   *travel.Service
	History   history.System
	Retention *history.Retention
}

func NewDomain(infra *infrastructure.Infrastructure, cfg *config.Config) *Domain {
	d := &Domain{}

	var recorder travel.Recorder
	if infra.Database != nil {
		d.History = history.New(infra.Database.Connection(), infra.Logger, cfg.History.Pagination)
		d.Retention = history.NewRetention(
			d.History,
			cfg.History.RetentionDuration(),
			cfg.History.PurgeSchedule,
			infra.Logger,
		)
		recorder = d.History
	}

	d.Service = travel.NewService(newFinder(cfg, infra.Logger), recorder, infra.Logger)
	return d
}

// Start applies history migrations and schedules retention.
func (d *Domain) Start(infra *infrastructure.Infrastructure) error {
	if d.History == nil {
		return nil
	}
	if err := infra.Database.Migrate(history.Migrations, history.MigrationsDir); err != nil {
		return fmt.Errorf("history migrations failed: %w", err)
	}
	if err := d.Retention.Start(infra.Lifecycle); err != nil {
		return fmt.Errorf("history retention failed: %w", err)
	}
	return nil
}

func newFinder(cfg *config.Config, logger *slog.Logger) travel.Finder {
	if cfg.Finder.Mode != config.FinderModeLive {
		return travel.NewMock()
	}

	if !cfg.Provider.HasCredentials() {
		logger.Warn("provider credentials missing; live searches will return no routes",
			"client_id_env", config.EnvProviderClientID,
			"client_secret_env", config.EnvProviderClientSecret,
		)
	}

	client := offers.New(&cfg.Provider, nil, logger)
	return travel.NewLive(client, &cfg.Provider, logger)
}
