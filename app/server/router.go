package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/appdotbuilder/dragon-nest-guild-portal/config"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter builds the API router with the shared middleware stack.
func NewRouter(cfg config.HTTPConfig, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(
		httpx.CorrelationID,
		middleware.Recoverer,
		httpx.RequestLogger(logger),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RateLimitMiddleware(httpx.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)),
	)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
	})
	return r
}

// HealthHandler answers liveness probes with the result of a database ping.
func HealthHandler(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.WarnContext(ctx, "Health check failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
