package testutil

import (
	"net/http"
	"time"

	"trastienda/pkg/requestcontext"
)

// WithActor adds an acting user to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithActor(req *http.Request, id, displayName string) *http.Request {
	ctx := requestcontext.WithActor(req.Context(), requestcontext.Actor{ID: id, DisplayName: displayName})
	return req.WithContext(ctx)
}

// WithClientMetadata adds client IP and User-Agent to the request context,
// simulating the metadata middleware.
func WithClientMetadata(req *http.Request, ip, userAgent string) *http.Request {
	ctx := requestcontext.WithClientIP(req.Context(), ip)
	ctx = requestcontext.WithUserAgent(ctx, userAgent)
	return req.WithContext(ctx)
}

// WithRequestTime pins the request time, making audit timestamps deterministic.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithRequestTime(req.Context(), t))
}
