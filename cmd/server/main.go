package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/persistence"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/ratelimit"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/config"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/pdf"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/svg"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/usecase"

	httpAdapter "github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/http"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize structured logger
	structuredLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: cfg.Logging.ServiceName,
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env":      cfg.Server.Environment,
		"timezone": cfg.Report.Timezone,
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load report timezone: %v", err)
	}

	// Connect to database
	db, err := persistence.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConnections, cfg.Database.MaxIdleTime)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to connect to database", err, nil)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	structuredLogger.Info(ctx, "Database connection established", nil)

	// Initialize rate limiter (Redis-backed or noop based on config)
	limiter, err := ratelimit.New(ctx, ratelimit.Config{
		Enabled:  cfg.RateLimit.Enabled,
		RedisURL: cfg.RateLimit.RedisURL,
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Window,
	}, structuredLogger)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to initialize rate limiter, continuing without it", err, map[string]interface{}{
			"redis_url": cfg.RateLimit.RedisURL,
		})
		limiter = ratelimit.NewNoop()
	}

	renderOptions := render.DefaultOptions()
	renderOptions.Title = cfg.Report.Title
	renderOptions.Organization = cfg.Report.Organization
	renderOptions.DetailRowLimit = cfg.Report.DetailRowLimit

	reportUseCase := usecase.NewReportUseCase(
		persistence.NewPostgresRecordSource(db, cfg.Database.QueryTimeout),
		persistence.NewPostgresUnitCatalog(db, cfg.Database.QueryTimeout),
		ports.SystemClock,
		structuredLogger,
		usecase.ReportOptions{
			Location: loc,
			Render:   renderOptions,
		},
		pdf.New(cfg.Report.Organization),
		svg.New(),
	)

	reportHandler := httpAdapter.NewReportHandler(reportUseCase, limiter, cfg.RateLimit.Window, structuredLogger)
	server := httpAdapter.NewServer(httpAdapter.ServerConfig{
		Address:             cfg.Address(),
		ReadTimeout:         cfg.Server.ReadTimeout,
		WriteTimeout:        cfg.Server.WriteTimeout,
		IdleTimeout:         cfg.Server.IdleTimeout,
		CorrelationIDHeader: cfg.Logging.CorrelationIDHeader,
		CORSEnabled:         cfg.CORS.Enabled && len(cfg.CORS.AllowedOrigins) > 0,
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		AllowCredentials:    cfg.CORS.AllowCredentials,
	}, reportHandler, structuredLogger)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, map[string]interface{}{
				"addr": cfg.Address(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, nil)
	}
	structuredLogger.Info(ctx, "Server exited", nil)
}
