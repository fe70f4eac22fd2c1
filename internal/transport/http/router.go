// Package httptransport assembles the HTTP surface: shared middleware, the
// health and metrics endpoints, and the authenticated club API.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	clubhandler "clubledger/internal/club/handler"
	"clubledger/internal/platform/middleware"
	ratelimit "clubledger/internal/ratelimit/middleware"
	"clubledger/pkg/platform/middleware/admin"
	"clubledger/pkg/platform/middleware/auth"
	"clubledger/pkg/platform/middleware/requesttime"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Clubs          clubhandler.Service
	Validator      auth.JWTValidator
	AdminTokenHash string
	Metrics        http.Handler
	// RateLimiter throttles authenticated callers; nil disables it.
	RateLimiter *ratelimit.Middleware
	// Ready reports dependency health for /readyz; nil means always ready.
	Ready  func(r *http.Request) error
	Logger *slog.Logger
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ready != nil {
			if err := deps.Ready(req); err != nil {
				deps.Logger.WarnContext(req.Context(), "readiness check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(admin.ResolveRoot(deps.AdminTokenHash, deps.Logger))
		r.Use(auth.RequireAuth(deps.Validator, deps.Logger))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.RateLimit)
		}
		clubhandler.New(deps.Clubs, deps.Logger).Register(r)
	})

	return otelhttp.NewHandler(r, "clubledger")
}
