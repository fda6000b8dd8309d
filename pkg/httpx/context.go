package httpx

import "context"

type ctxKey string

const (
	CtxKeyPrincipal ctxKey = "principal"
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	ID    string
	Email string
	Name  string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}

// PrincipalFromContext returns the caller set by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	if !ok || p.ID == "" {
		return Principal{}, false
	}
	return p, true
}
