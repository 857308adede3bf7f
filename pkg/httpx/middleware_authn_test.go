package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/authsystem/authd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSignedToken(t *testing.T, secret []byte) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewIdentityClaims("a@x.com", "alice", "test-issuer", time.Hour, time.Now()))
	require.NoError(t, err)
	return token
}

func TestAuthnMiddlewareInjectsIdentity(t *testing.T) {
	secret := []byte("middleware-secret")
	verifier, err := jwtx.NewVerifierHS256(secret, "test-issuer")
	require.NoError(t, err)

	var gotSubject, gotUsername string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = SubjectFromCtx(r.Context())
		gotUsername = UsernameFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+newSignedToken(t, secret))
	rec := httptest.NewRecorder()
	Chain(inner, AuthnMiddleware(verifier)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a@x.com", gotSubject)
	require.Equal(t, "alice", gotUsername)
}

func TestAuthnMiddlewareRejectsWithoutToken(t *testing.T) {
	verifier, err := jwtx.NewVerifierHS256([]byte("middleware-secret"), "test-issuer")
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a bearer token")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Chain(inner, AuthnMiddleware(verifier)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestIdentityAccessorsOnBareContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, SubjectFromCtx(req.Context()))
	require.Empty(t, UsernameFromCtx(req.Context()))
}
