package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fulfilmenthub/notify-adapter/internal/api/handler"
	apimw "github.com/fulfilmenthub/notify-adapter/internal/api/middleware"
	"github.com/fulfilmenthub/notify-adapter/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	fh *handler.FulfilmentHandler,
	limiter *ratelimiter.Limiter,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)            // recover panics, return 500
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)        // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))

	hh := handler.NewHealthHandler()
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// The webhook route accepts every method so the validator can return
	// the contractual "Method not allowed" body instead of chi's default
	// 405 response.
	r.With(apimw.RateLimit(limiter)).HandleFunc("/", fh.Send)

	return r
}
