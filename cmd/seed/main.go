package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/memory"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/persistence"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/config"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func main() {
	recordsPath := flag.String("records", "", "JSON file with ticket records")
	unitsPath := flag.String("units", "", "JSON file with the unit catalog (optional)")
	flag.Parse()

	if *recordsPath == "" {
		log.Fatal("--records is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	records, err := memory.LoadRecords(*recordsPath)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	var units []domain.Unit
	if *unitsPath != "" {
		if units, err = memory.LoadUnits(*unitsPath); err != nil {
			log.Fatalf("Failed to load units: %v", err)
		}
	}

	ctx := context.Background()
	db, err := persistence.Connect(ctx, cfg.Database.URL, 1, cfg.Database.MaxIdleTime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	n, err := persistence.Seed(ctx, db, units, records)
	if err != nil {
		log.Fatalf("Failed to seed records: %v", err)
	}
	fmt.Printf("Seeded %d tickets from %s\n", n, *recordsPath)
}
