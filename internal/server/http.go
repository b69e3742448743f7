package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/api"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// PingFunc checks that upstream dependencies are reachable.
type PingFunc func(ctx context.Context) error

// NewHTTPServer wires base routes (health, metrics, ping) and the trivia API.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, ping PingFunc, handlers *api.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewHandler(cfg.CORS, logger, ping, handlers),
	}
}

// NewHandler builds the routed handler with the full middleware chain.
func NewHandler(cors config.CORS, logger zerolog.Logger, ping PingFunc, handlers *api.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logging.FromContext(r.Context()).Error().Err(err).Msg("dependency ping failed")
				http.Error(w, "upstream error", http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if handlers != nil {
		handlers.Register(mux)
	}

	var h http.Handler = mux
	h = instrument(h)
	h = corsMiddleware(cors)(h)
	h = recoverer(h)
	h = requestContext(logger)(h)
	return h
}

// PingDependencies returns a PingFunc covering Postgres and Redis.
func PingDependencies(pool *pgxpool.Pool, redis *redis.Client) PingFunc {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
		if err := redis.Ping(ctx).Err(); err != nil {
			return err
		}
		return nil
	}
}
