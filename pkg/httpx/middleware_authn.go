package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// VerifyFunc resolves the raw Authorization header into a caller. It owns
// the "Bearer " parsing so the error it returns can carry the right
// message for the client.
type VerifyFunc func(ctx context.Context, authorization string) (Principal, error)

// ErrorWriter renders a failed authentication.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware rejects requests whose Authorization header does not
// verify, and injects the Principal into the context otherwise.
func AuthnMiddleware(verify VerifyFunc, onError ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, err := verify(ctx, r.Header.Get("Authorization"))
			if err != nil {
				slogx.FromContext(ctx).Debug("authentication failed", "err", err)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				onError(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "user_id", p.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
