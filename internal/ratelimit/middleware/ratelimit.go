// Package middleware limits request rates per caller.
package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"clubledger/internal/club/authz"
	"clubledger/internal/ratelimit/metrics"
	"clubledger/internal/ratelimit/models"
	"clubledger/pkg/platform/httputil"
	"clubledger/pkg/requestcontext"
)

// BucketStore counts requests per key in a sliding window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

type Middleware struct {
	store    BucketStore
	limits   map[models.EndpointClass]models.Limit
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

func New(store BucketStore, limits map[models.EndpointClass]models.Limit, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limits: limits,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit refuses requests once the caller has spent its budget for the
// request's class. Reads and writes have separate budgets. A failing store
// lets the request through.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		class := classify(r)
		limit, ok := m.limits[class]
		if !ok || limit.Requests <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := string(class) + ":" + callerKey(r)
		result, err := m.store.Allow(ctx, key, limit.Requests, limit.Window)
		if err != nil {
			m.metrics.IncrementStoreErrors()
			m.logger.ErrorContext(ctx, "failed to check rate limit",
				"error", err,
				"class", string(class),
				"request_id", requestcontext.RequestID(ctx),
			)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)
		if !result.Allowed {
			m.metrics.IncrementRejections(string(class))
			m.logger.WarnContext(ctx, "rate limit exceeded",
				"class", string(class),
				"caller", callerKey(r),
				"request_id", requestcontext.RequestID(ctx),
			)
			writeRateLimitExceeded(w, result)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func classify(r *http.Request) models.EndpointClass {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return models.ClassRead
	default:
		return models.ClassWrite
	}
}

// callerKey is the authenticated caller, or the client address when the
// caller has not been resolved.
func callerKey(r *http.Request) string {
	if caller, ok := authz.FromContext(r.Context()); ok {
		return caller.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
