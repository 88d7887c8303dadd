package middleware

import (
	"github.com/rs/cors"

	"github.com/az-ai-labs/silabas/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// including preflight OPTIONS requests, as configured.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
