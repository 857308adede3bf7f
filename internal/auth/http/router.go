package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/authsystem/authd/internal/auth/service"
	"github.com/authsystem/authd/internal/auth/store"
	"github.com/authsystem/authd/pkg/httpx"
	"github.com/authsystem/authd/pkg/jwtx"
	"github.com/authsystem/authd/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService *service.AuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/auth/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/login", &LoginHandler{AuthService: r.AuthService})

	// Bearer-protected confirmation endpoint. The middleware verifies the
	// token (signature + expiry) before the handler runs.
	r.Mux.Handle("GET /api/auth/test",
		httpx.Chain(ProtectedTestHandler(),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
