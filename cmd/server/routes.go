package main

import (
	"net/http"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/history"
	"github.com/JaimeStill/route-finder/internal/infrastructure"
	"github.com/JaimeStill/route-finder/internal/travel"
	"github.com/JaimeStill/route-finder/pkg/lifecycle"
	"github.com/JaimeStill/route-finder/pkg/routes"
	"github.com/JaimeStill/route-finder/web/app"
)

// registerRoutes configures health probes, the JSON API, and the web app.
func registerRoutes(r routes.System, infra *infrastructure.Infrastructure, domain *Domain, cfg *config.Config) error {
	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handleReadinessCheck(w, infra.Lifecycle)
		},
	})

	api := routes.Group{
		Prefix:   "/api",
		Children: []routes.Group{
			travel.NewHandler(domain.Service, infra.Logger).Routes(),
		},
	}
	if domain.History != nil {
		historyHandler := history.NewHandler(
			domain.History,
			infra.Logger,
			cfg.History.Pagination,
			cfg.History.ExportLimit,
		)
		api.Children = append(api.Children, historyHandler.Routes())
	}
	r.RegisterGroup(api)

	webApp, err := app.New(app.Config{
		MaxFormSize: cfg.Web.MaxFormSizeBytes(),
		Service:     domain.Service,
		Logger:      infra.Logger,
	})
	if err != nil {
		return err
	}
	r.RegisterMount(routes.Mount{Pattern: "/", Handler: webApp.Handler()})

	return nil
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
