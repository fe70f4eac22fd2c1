package testutil

import (
	"net/http"

	"clubledger/internal/club/authz"
	"clubledger/pkg/requestcontext"
)

// WithCaller resolves caller on the request the way the admin and bearer
// middlewares do.
func WithCaller(req *http.Request, caller authz.Caller) *http.Request {
	ctx := authz.WithCaller(req.Context(), caller)
	ctx = requestcontext.WithActor(ctx, caller.String())
	return req.WithContext(ctx)
}
