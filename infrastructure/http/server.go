package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	sessioncontext "pesagem/frontend/shared/context"
	"pesagem/infrastructure/audit"
	"pesagem/infrastructure/cache"
	"pesagem/infrastructure/config"
	"pesagem/infrastructure/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Config  config.Config
	Drafts  *cache.DraftCache
	Exports *cache.ExportCache
	Audit   *audit.Service
}

// NewServer creates a new http server.
func NewServer(cfg config.Config, drafts *cache.DraftCache, exports *cache.ExportCache, auditSvc *audit.Service) *Server {
	s := &Server{
		Addr:    cfg.Addr,
		router:  chi.NewRouter(),
		Config:  cfg,
		Drafts:  drafts,
		Exports: exports,
		Audit:   auditSvc,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Secure headers first. The print page opens in its own tab and the
	// PDF download runs in a same-origin iframe.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.router.Group(func(r chi.Router) {
		r.Use(s.DraftMiddleware)
		s.RegisterWeighingRoutes(r)
	})

	s.server.Handler = s.router
	return s
}

// DraftMiddleware makes sure the browser carries a draft cookie and puts
// its token in the request context.
func (s *Server) DraftMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(session.CookieName); err == nil {
			token = c.Value
		}
		if token == "" {
			token = session.NewToken(32)
			slog.Debug("new draft", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		}
		// Refresh on every request so an active desk never loses its draft.
		http.SetCookie(w, session.DraftCookie(token, session.DraftCookieMaxAge))

		ctx := sessioncontext.NewContextWithDraftToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
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
