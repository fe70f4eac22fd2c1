// Package admin authenticates the privileged caller by its admin token.
package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"clubledger/internal/club/authz"
	"clubledger/pkg/platform/secrets"
	"clubledger/pkg/requestcontext"
)

const HeaderAdminToken = "X-Admin-Token"

// ResolveRoot marks requests carrying a valid admin token as the privileged
// caller. Requests without the header pass through untouched so signed callers
// can be resolved downstream. tokenHash is the bcrypt hash of the token; when
// empty every admin token is refused.
func ResolveRoot(tokenHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderAdminToken)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			if tokenHash == "" || secrets.Verify(token, tokenHash) != nil {
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "admin token required")
				return
			}

			ctx = authz.WithCaller(ctx, authz.Root())
			ctx = requestcontext.WithActor(ctx, authz.Root().String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}
