// Package auth turns a bearer JWT into the acting user for audit purposes.
// Authorization decisions stay upstream; this middleware only identifies who
// is acting.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"trastienda/pkg/requestcontext"
)

// Actor validates the Authorization header when present and injects the
// actor into the request context. Requests without a header pass through
// actorless (system callers, health checks); a malformed or forged token is
// rejected so records never carry a fabricated actor.
func Actor(signingKey string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			actor, err := actorFromToken(token, signingKey)
			if err != nil {
				log.Warn("rejected bearer token", zap.Error(err))
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := requestcontext.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type actorClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

func actorFromToken(token, signingKey string) (requestcontext.Actor, error) {
	claims := &actorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return requestcontext.Actor{}, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return requestcontext.Actor{}, fmt.Errorf("token missing subject")
	}
	return requestcontext.Actor{ID: claims.Subject, DisplayName: claims.Name}, nil
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"unauthorized","error_description":"%s"}`, description))
}
