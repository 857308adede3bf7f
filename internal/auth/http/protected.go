package http

import (
	"net/http"

	"github.com/authsystem/authd/pkg/httpx"
	"github.com/authsystem/authd/pkg/slogx"
)

// ProtectedTestHandler serves GET /api/auth/test. Token verification happens
// in httpx.AuthnMiddleware before this handler runs, so reaching it means
// the caller is authenticated.
func ProtectedTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slogx.FromContext(ctx).Debug("protected endpoint accessed",
			"subject", httpx.SubjectFromCtx(ctx),
			"username", httpx.UsernameFromCtx(ctx),
		)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("You are authenticated! This is a protected endpoint."))
	}
}
