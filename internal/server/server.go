package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/modules/networth"
	"github.com/findash/findash/internal/modules/portfolio"
	"github.com/findash/findash/internal/modules/projections"
	"github.com/findash/findash/internal/modules/spending"
)

// Config holds server configuration
type Config struct {
	Port        int
	Log         zerolog.Logger
	DevMode     bool
	Spending    *spending.Handler
	NetWorth    *networth.Handler
	Projections *projections.Handler
	Portfolio   *portfolio.Handler
	System      *SystemHandlers
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	port   int
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		port:   cfg.Port,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes(cfg)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(cfg Config) {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", cfg.System.HandleSystemStatus)
			r.Post("/reload", cfg.System.HandleReload)
		})

		// Spending
		r.Route("/spending", func(r chi.Router) {
			r.Get("/totals", cfg.Spending.HandleTotals)
			r.Get("/monthly", cfg.Spending.HandleMonthly)
			r.Get("/trends", cfg.Spending.HandleTrends)
			r.Get("/top-merchants", cfg.Spending.HandleTopMerchants)
			r.Get("/budget", cfg.Spending.HandleBudget)
			r.Get("/summary", cfg.Spending.HandleSummary)
		})

		// Net worth
		r.Route("/networth", func(r chi.Router) {
			r.Get("/series", cfg.NetWorth.HandleSeries)
			r.Get("/stats", cfg.NetWorth.HandleStats)
			r.Get("/metrics", cfg.NetWorth.HandleMetrics)
			r.Get("/accounts", cfg.NetWorth.HandleAccounts)
			r.Get("/pivot", cfg.NetWorth.HandlePivot)
		})

		// Growth projections
		r.Route("/projections", func(r chi.Router) {
			r.Get("/goal", cfg.Projections.HandleGoal)
		})

		// Portfolio
		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/risk", cfg.Portfolio.HandleRisk)
			r.Get("/performance", cfg.Portfolio.HandlePerformance)
			r.Get("/daily", cfg.Portfolio.HandleDaily)
			r.Get("/comparison", cfg.Portfolio.HandleComparison)
			r.Get("/correlation", cfg.Portfolio.HandleCorrelation)
			r.Get("/owned", cfg.Portfolio.HandleOwned)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
