package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"cellar-market/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader deduplicates bid submissions.
const IdempotencyKeyHeader = "Idempotency-Key"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := withHeader(cfg.AllowHeaders, IdempotencyKeyHeader)
	exposed := withHeader(cfg.ExposeHeaders, RequestIDHeader)

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeader(headers []string, name string) []string {
	if slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, name) }) {
		return headers
	}
	return append(slices.Clone(headers), name)
}
