package middleware

import (
	"net/http"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/rs/cors"
)

// CORS returns middleware applying cfg. Requests pass through untouched when
// CORS is disabled or no origins are configured.
func CORS(cfg *config.CORSConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled || len(cfg.Origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
