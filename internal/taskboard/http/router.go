package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/metrics"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/taskboard" // Swagger docs
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the transport-level options.
type RouterConfig struct {
	BuildVersion string
	CORSOrigins  []string

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP
	// via chi's RealIP. Otherwise rate limits key on the TCP peer. Only
	// enable behind a proxy that overwrites those headers.
	TrustProxy bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      metrics.Recorder
	gatherer     prometheus.Gatherer

	store       store.Store
	AuthService *service.AuthService
	TaskService *service.TaskService
}

// NewRouter builds a router. gatherer may be nil, in which case /metrics is
// not served.
func NewRouter(
	cfg RouterConfig,
	st store.Store,
	logger *slog.Logger,
	rec metrics.Recorder,
	gatherer prometheus.Gatherer,
) *Router {
	if rec == nil {
		rec = metrics.Nop{}
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: cfg.BuildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      rec,
		gatherer:     gatherer,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		middleware.Recoverer,
		httpx.CORS(cfg.CORSOrigins...),
	}
	if cfg.TrustProxy {
		r.middlewares = append([]httpx.Middleware{middleware.RealIP}, r.middlewares...)
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoot()
	r.registerAuth()
	r.registerUsers()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", notFound)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Per-user task tracking with stateless session tokens.
//	@description
//	@description				Sessions are HS256 JWTs valid for 30 days and cannot be refreshed.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern and labels its metrics with the pattern.
func (r *Router) handle(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, metrics.Middleware(r.metrics, pattern)(h))
}

// secured wraps h with session verification and a per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	auth := &AuthHandler{AuthService: r.AuthService}
	return httpx.Chain(h,
		httpx.AuthnMiddleware(auth.verifySession, writeServiceError),
		httpx.RateLimitByUser(limit),
	)
}

// public wraps an unauthenticated handler with the per-address public limit.
func public(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit))
}

func (r *Router) registerRoot() {
	r.handle("GET /{$}", public(textHandler("Welcome to our server")))
	r.handle("GET /api/v1/{$}", public(textHandler("Explore the our frontend and backend server.")))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, Metrics: r.metrics}

	// POST /register - strict rate limit by IP (public signup endpoint)
	r.handle("POST /api/v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP + email to slow credential stuffing
	r.handle("POST /api/v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerUsers() {
	r.handle("GET /api/v1/users/me", r.secured(MeHandler, httpx.LenientLimit))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService, Metrics: r.metrics}

	r.handle("GET /api/v1/tasks", r.secured(h.HandleList, httpx.LenientLimit))
	r.handle("POST /api/v1/tasks", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.handle("GET /api/v1/tasks/analytics", r.secured(h.HandleAnalytics, httpx.LenientLimit))
	r.handle("GET /api/v1/tasks/{taskId}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.handle("PATCH /api/v1/tasks/{taskId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.handle("PUT /api/v1/tasks/{taskId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.handle("DELETE /api/v1/tasks/{taskId}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health checks share the public limit with the banners.
	r.Mux.Handle("GET /livez", public(LivezHandler(r.startTime, r.buildVersion)))
	r.Mux.Handle("GET /readyz", public(ReadyzHandler(r.startTime, r.buildVersion, r.store)))

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
	}
}
