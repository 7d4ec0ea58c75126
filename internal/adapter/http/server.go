package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/metrics"
)

// Server represents the HTTP server
type Server struct {
	addr   string
	router *mux.Router
	server *http.Server
	log    logger.Logger
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Address             string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	IdleTimeout         time.Duration
	CorrelationIDHeader string
	CORSEnabled         bool
	AllowedOrigins      []string
	AllowCredentials    bool
}

// NewServer creates a new HTTP server
func NewServer(config ServerConfig, reportHandler *ReportHandler, log logger.Logger) *Server {
	router := mux.NewRouter()

	reportHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	router.Use(correlationMiddleware(config.CorrelationIDHeader))
	router.Use(loggingMiddleware(log))
	router.Use(recoveryMiddleware(log))
	if config.CORSEnabled {
		router.Use(corsMiddleware(config.AllowedOrigins, config.AllowCredentials))
		// preflight requests never match a GET route
		router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	}

	return &Server{
		addr:   config.Address,
		router: router,
		log:    log,
		server: &http.Server{
			Addr:         config.Address,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
	}
}

// Handler exposes the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info(context.Background(), "Starting HTTP server", map[string]interface{}{"addr": s.addr})
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info(ctx, "Shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}
