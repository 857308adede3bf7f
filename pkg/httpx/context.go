package httpx

import "context"

type ctxKey string

const (
	CtxKeySubject  ctxKey = "subject"
	CtxKeyUsername ctxKey = "username"
)

// SubjectFromCtx returns the authenticated subject (email) injected by
// AuthnMiddleware, or "" if the request was not authenticated.
func SubjectFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}

// UsernameFromCtx returns the authenticated display name, or "".
func UsernameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
