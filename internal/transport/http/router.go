// Package httptransport assembles the HTTP surface. Handlers stay thin and
// delegate to domain services; business logic never lives here.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	billinghandler "caseflow/internal/billing/handler"
	"caseflow/internal/platform/middleware"
)

// RouterConfig carries the dependencies the router wires together.
type RouterConfig struct {
	Billing *billinghandler.Handler
	// Validator guards the billing routes. Nil disables authentication
	// (local development only).
	Validator middleware.JWTValidator
	Logger    *slog.Logger
}

// NewRouter wires all endpoints. Health and metrics stay open; billing
// routes require a bearer token unless authentication is disabled.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.Validator != nil {
			r.Use(middleware.RequireAuth(cfg.Validator, cfg.Logger))
		}
		cfg.Billing.Register(r)
	})

	return r
}
