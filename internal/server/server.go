package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/gate"
	"github.com/jonathan/placement-readiness/internal/server/middleware"
	"github.com/jonathan/placement-readiness/internal/server/ratelimit"
	"github.com/jonathan/placement-readiness/internal/store"
)

// Server is the readiness HTTP API.
type Server struct {
	httpServer  *http.Server
	store       store.Store
	gate        *gate.Gate
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter

	// Auth is optional: with no passphrase hash configured the API runs
	// open (local single-user mode) and no JWT config is required.
	jwtService *JWTService
	passphrase *config.PassphraseConfig
	hash       string
}

// Options configures New.
type Options struct {
	Port           int
	Store          store.Store
	Gate           *gate.Gate
	PassphraseHash string
}

// New creates a server instance. When a passphrase hash is given, JWT and
// passphrase configuration are loaded from the environment and mutating
// routes require a Bearer token.
func New(opts Options) (*Server, error) {
	s := &Server{
		store:       opts.Store,
		gate:        opts.Gate,
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		hash:        opts.PassphraseHash,
	}

	if opts.PassphraseHash != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)

		passphraseConfig, err := config.NewPassphraseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create passphrase config: %w", err)
		}
		s.passphrase = passphraseConfig
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/token", s.handleToken)

	mux.Handle("POST /analyses", s.protected(http.HandlerFunc(s.handleCreateAnalysis)))
	mux.HandleFunc("GET /analyses", s.handleListAnalyses)
	mux.HandleFunc("GET /analyses/latest", s.handleLatestAnalysis)
	mux.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	mux.Handle("PATCH /analyses/{id}/confidence", s.protected(http.HandlerFunc(s.handleConfidence)))

	mux.HandleFunc("GET /gate", s.handleGetGate)
	mux.Handle("PUT /gate", s.protected(http.HandlerFunc(s.handleSetGate)))
	mux.Handle("DELETE /gate", s.protected(http.HandlerFunc(s.handleResetGate)))
	mux.HandleFunc("GET /gate/status", s.handleGateStatus)

	handler := s.withLogging(s.withRateLimit(mux))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// protected wraps a handler with token auth when auth is configured.
func (s *Server) protected(next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.RequireToken(s.jwtService)(next)
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit applies the per-client token-bucket limiter.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(r.RemoteAddr, r.URL.Path, r.Method)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
