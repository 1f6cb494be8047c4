package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"sampark/frontend/login"
	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/audit"
	"sampark/infrastructure/config"
	"sampark/infrastructure/files"
	"sampark/infrastructure/logging"
	"sampark/infrastructure/metrics"
	"sampark/infrastructure/rbac"
	sessioncookie "sampark/infrastructure/session"
	"sampark/infrastructure/sqlite"
	"sampark/infrastructure/store"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Deps are the collaborators the routes need.
type Deps struct {
	Logger   *zap.Logger
	Store    *store.Store
	DB       *sqlite.DB
	Audit    *audit.Service
	Sessions *login.Sessions
	Rbac     *rbac.Rbac
	Blobs    *files.Blobs
}

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	cfg config.HTTPConfig
	Deps
}

// NewServer creates a new http server.
func NewServer(cfg config.HTTPConfig, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Blobs == nil {
		deps.Blobs = files.NewBlobs()
	}
	if cfg.ShutdownSeconds > 0 {
		ShutdownTimeout = time.Duration(cfg.ShutdownSeconds) * time.Second
	}
	s := &Server{
		Addr:   cfg.Addr,
		router: chi.NewRouter(),
		cfg:    cfg,
		Deps:   deps,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.RequestID)
	s.router.Use(logging.RequestLogger(s.Logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(metrics.Middleware)
	s.router.Use(middleware.Compress(5))
	if cfg.EnableCSRF {
		s.router.Use(s.CSRFMiddleware)
	}

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", metrics.Handler())

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		s.Logger.Error("assets subfs init failed; serving fallback fs", zap.Error(err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.router.Group(func(r chi.Router) {
		r.Use(s.SessionMiddleware)
		r.Use(s.RbacMiddleware)
		s.RegisterPageRoutes(r)
		r.Route("/api", func(r chi.Router) {
			s.RegisterAccountRoutes(r)
			s.RegisterRecordRoutes(r)
			s.RegisterWorkflowRoutes(r)
			s.RegisterFileRoutes(r)
			s.RegisterReportRoutes(r)
			s.RegisterAdminRoutes(r)
		})
	})

	s.server.Handler = s.router
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SessionMiddleware resolves the session cookie. Visitors without a live
// session get a fresh demo session.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(sessioncookie.CookieName); err == nil {
			token = c.Value
		}

		session, ok := s.Sessions.Resolve(token)
		if !ok {
			session = s.Sessions.Issue()
			maxAge := int(time.Until(session.ExpiresAt).Seconds())
			http.SetCookie(w, sessioncookie.SessionCookie(session.ID, maxAge, s.cfg.SecureCookies))
			s.Logger.Debug("issued demo session",
				zap.String("role", session.User.Role),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		}

		ctx := sessioncontext.NewContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RbacMiddleware rejects requests the session role holds no resource for.
func (s *Server) RbacMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := sessioncontext.CurrentUser(r.Context())
		if !s.Rbac.Allowed(user.Role, r.URL.Path, r.Method) {
			s.Logger.Warn("rbac denied",
				zap.String("role", user.Role),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			respond.JSON(w, http.StatusForbidden, respond.ErrorBody{Error: "forbidden"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", zap.Error(err))
		}
	}()
	return nil
}

// ListenAddr returns the bound address once started.
func (s *Server) ListenAddr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}
