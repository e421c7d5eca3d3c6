// Package server assembles the HTTP surface: Connect services, health and
// metrics endpoints, and the static web client.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/metrics"
	appmiddleware "github.com/mmynk/saladbowl/internal/middleware"
	"github.com/mmynk/saladbowl/internal/ratelimit"
	"github.com/mmynk/saladbowl/pkg/api/apiconnect"
)

const (
	rpcPrefix     = "/saladbowl.v1."
	healthTimeout = 2 * time.Second
)

// Services holds the Connect service implementations.
type Services struct {
	Auth     apiconnect.AuthServiceHandler
	Roster   apiconnect.RosterServiceHandler
	Recipe   apiconnect.RecipeServiceHandler
	Shopping apiconnect.ShoppingServiceHandler
	Settings apiconnect.SettingsServiceHandler
	Billing  apiconnect.BillingServiceHandler
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures New. Zero values disable the optional parts.
type Options struct {
	JWT            *auth.JWTManager
	AuthLimiter    *ratelimit.KeyedRateLimiter
	Metrics        *metrics.Metrics
	Health         Pinger
	StaticPath     string
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Server routes HTTP requests.
type Server struct {
	router *chi.Mux
	opts   Options
	logger *slog.Logger
}

// New creates a router with all routes configured.
func New(services Services, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		opts:   opts,
		logger: logger,
	}

	s.setupMiddleware()
	s.setupRoutes(services)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		MaxAge: 300,
	}))
}

func (s *Server) setupRoutes(services Services) {
	s.router.Get("/healthz", s.handleHealth)
	if s.opts.Metrics != nil {
		s.router.Handle("/metrics", s.opts.Metrics.Handler())
	}

	common := s.interceptors()
	authOpts := slices.Clone(common)
	if s.opts.AuthLimiter != nil {
		authOpts = append(authOpts, appmiddleware.RateLimitInterceptor(s.opts.AuthLimiter))
	}

	s.mount(apiconnect.NewAuthServiceHandler(services.Auth, connect.WithInterceptors(authOpts...)))
	s.mount(apiconnect.NewRosterServiceHandler(services.Roster, connect.WithInterceptors(common...)))
	s.mount(apiconnect.NewRecipeServiceHandler(services.Recipe, connect.WithInterceptors(common...)))
	s.mount(apiconnect.NewShoppingServiceHandler(services.Shopping, connect.WithInterceptors(common...)))
	s.mount(apiconnect.NewSettingsServiceHandler(services.Settings, connect.WithInterceptors(common...)))
	s.mount(apiconnect.NewBillingServiceHandler(services.Billing, connect.WithInterceptors(common...)))

	if s.opts.StaticPath != "" {
		s.router.Get("/*", s.handleStatic)
	}
}

// interceptors returns the chain shared by every service. Auth runs first so
// the logging interceptor sees the caller; anything appended after logging
// is recorded by it.
func (s *Server) interceptors() []connect.Interceptor {
	var chain []connect.Interceptor
	if s.opts.JWT != nil {
		chain = append(chain, appmiddleware.OptionalAuth(s.opts.JWT))
	}
	return append(chain, appmiddleware.LoggingInterceptor(s.logger, s.opts.Metrics))
}

func (s *Server) mount(path string, handler http.Handler) {
	s.router.Mount(path, handler)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, "ok"
	if s.opts.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := s.opts.Health.Ping(ctx); err != nil {
			s.logger.Error("Health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, "unavailable"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": body})
}

// handleStatic serves the web client. Unknown paths get index.html so the
// client can route them.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, rpcPrefix) {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}
	filePath := filepath.Join(s.opts.StaticPath, filepath.Clean("/"+urlPath))

	if info, err := os.Stat(filePath); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(s.opts.StaticPath, "index.html"))
		return
	}
	http.ServeFile(w, r, filePath)
}

// NewHTTPServer wraps handler with h2c so Connect clients can use HTTP/2
// without TLS.
func NewHTTPServer(addr string, handler http.Handler, readTimeout, writeTimeout, idleTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}
