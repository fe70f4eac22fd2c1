package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"clubledger/internal/club/authz"
	id "clubledger/pkg/domain"
	"clubledger/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	AccountID id.AccountID
	JTI       string
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth resolves the signed caller from a bearer token. A caller already
// resolved upstream (the privileged admin) is kept as is.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := authz.FromContext(ctx); ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
				claims, err := validator.ValidateToken(token)
				if err != nil {
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
					return
				}

				caller := authz.Signed(claims.AccountID)
				ctx = authz.WithCaller(ctx, caller)
				ctx = requestcontext.WithActor(ctx, caller.String())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			logger.WarnContext(ctx, "unauthorized access - missing token",
				"request_id", requestcontext.RequestID(ctx),
			)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
		})
	}
}
