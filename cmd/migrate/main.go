package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/persistence"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/config"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	structuredLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "migrate",
	})

	db, err := persistence.Connect(ctx, cfg.Database.URL, 1, cfg.Database.MaxIdleTime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrations, err := persistence.Migrations()
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}

	var versions []int
	switch strings.ToLower(*mode) {
	case "up":
		versions, err = persistence.MigrateUp(ctx, db, migrations)
	case "down":
		versions, err = persistence.MigrateDown(ctx, db, migrations)
	default:
		log.Fatalf("unknown mode: %s", *mode)
	}
	if err != nil {
		structuredLogger.Error(ctx, "Migration failed", err, map[string]interface{}{
			"mode":      *mode,
			"completed": versions,
		})
		log.Fatalf("migration %s failed: %v", *mode, err)
	}

	structuredLogger.Info(ctx, "Migration completed", map[string]interface{}{
		"mode":     *mode,
		"versions": versions,
	})
}
