package main

import (
	"log/slog"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/middleware"
)

// buildMiddleware creates the stack applied around the root handler.
func buildMiddleware(logger *slog.Logger, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.TrimSlash())
	sys.Use(middleware.Logger(logger))
	sys.Use(middleware.CORS(&cfg.CORS))
	return sys
}
