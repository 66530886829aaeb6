// Package server exposes the bot over HTTP: the Bot Framework webhook, a
// health check and the local playground console.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/bot"
	"github.com/contoso/talentbot/internal/extension"
	"github.com/contoso/talentbot/internal/talent"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the talentbot HTTP server.
type Server struct {
	cfg        Config
	engine     *bot.Engine
	extension  *extension.Handler
	states     bot.StateStore
	candidates talent.CandidateProvider
	positions  talent.PositionProvider
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies. The candidate/position
// providers are needed alongside the engine so the playground can build its
// own engine around a websocket-backed sender.
func New(cfg Config, engine *bot.Engine, ext *extension.Handler, states bot.StateStore,
	candidates talent.CandidateProvider, positions talent.PositionProvider, logger *zap.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		engine:     engine,
		extension:  ext,
		states:     states,
		candidates: candidates,
		positions:  positions,
		logger:     logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/messages", s.handleMessages)
	r.Get("/api/playground", s.handlePlaygroundPage)
	r.Get("/api/playground/ws", s.handlePlaygroundWS)

	return r
}

// Router returns the chi router, exposed for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("talentbot server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
