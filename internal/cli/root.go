// Package cli implements the reportctl command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/memory"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/adapter/persistence"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/config"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/pdf"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/svg"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/usecase"
)

// Version is the current version of reportctl
var Version = "0.1.0"

// options holds the flags shared by every subcommand
type options struct {
	period     string
	recordsPath string
	unitsPath  string
	dbURL      string
	now        string
	timezone   string
	unitID     string
	categoryID string
	status     string
	priority   string
	page       int
	pageSize   int
	rowLimit   int
	logLevel   string
}

// NewRootCmd builds the reportctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reportctl",
		Short: "Build complaint report summaries and documents",
		Long: `reportctl builds the patient complaint report from a Postgres database or
from JSON fixtures.

Records come from --records (and optionally --units) when given, otherwise
from --db-url or DATABASE_URL.

Examples:
  reportctl summary --period week --records tickets.json
  reportctl summary --period month --db-url postgres://... --format json
  reportctl render --period quarter --format pdf --out laporan.pdf
  reportctl render --records tickets.json --now 2026-10-15T09:00:00+07:00 --format svg`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.period, "period", "month", "Report period: week | month | quarter | year")
	flags.StringVar(&opts.recordsPath, "records", "", "JSON file with ticket records")
	flags.StringVar(&opts.unitsPath, "units", "", "JSON file with the unit catalog (default: units seen in --records)")
	flags.StringVar(&opts.dbURL, "db-url", "", "Postgres URL (default: DATABASE_URL)")
	flags.StringVar(&opts.now, "now", "", "Reference instant in RFC3339 (default: current time)")
	flags.StringVar(&opts.timezone, "timezone", "", "Report timezone (default: REPORT_TIMEZONE)")
	flags.StringVar(&opts.unitID, "unit", "", "Only include this unit id")
	flags.StringVar(&opts.categoryID, "category", "", "Only include this category id")
	flags.StringVar(&opts.status, "status", "", "Only include this status")
	flags.StringVar(&opts.priority, "priority", "", "Only include this priority")
	flags.IntVar(&opts.page, "page", domain.DefaultPage, "Detail rows page")
	flags.IntVar(&opts.pageSize, "page-size", domain.DefaultPageSize, "Detail rows page size")
	flags.IntVar(&opts.rowLimit, "row-limit", 0, "Detail rows shown in documents (default: REPORT_DETAIL_ROW_LIMIT)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(newSummaryCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// filter translates the filter flags into a FilterSpec
func (o *options) filter() (domain.FilterSpec, error) {
	f := domain.NewFilterSpec(domain.ParsePeriod(o.period))
	f.Page = o.page
	f.PageSize = o.pageSize

	if o.unitID != "" {
		v := o.unitID
		f.UnitID = &v
	}
	if o.categoryID != "" {
		v := o.categoryID
		f.CategoryID = &v
	}
	if o.status != "" {
		status := domain.TicketStatus(strings.ToLower(o.status))
		if !status.Valid() {
			return f, domain.NewInvalidFilterError("status", o.status)
		}
		f.Status = &status
	}
	if o.priority != "" {
		priority := domain.TicketPriority(strings.ToLower(o.priority))
		if !priority.Valid() {
			return f, domain.NewInvalidFilterError("priority", o.priority)
		}
		f.Priority = &priority
	}
	return f, nil
}

func (o *options) clock() (ports.Clock, error) {
	if o.now == "" {
		return ports.SystemClock, nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: %w", o.now, err)
	}
	return ports.FixedClock(t), nil
}

// buildUseCase wires the report use case from flags and environment. The
// returned cleanup releases the database connection, if any.
func (o *options) buildUseCase(ctx context.Context, stderr io.Writer) (*usecase.ReportUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.timezone != "" {
		cfg.Report.Timezone = o.timezone
	}
	if o.rowLimit > 0 {
		cfg.Report.DetailRowLimit = o.rowLimit
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	clock, err := o.clock()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{
		Level:       o.logLevel,
		Format:      "text",
		ServiceName: "reportctl",
		Output:      stderr,
	})

	var (
		records ports.RecordSource
		units   ports.UnitCatalog
		cleanup = func() {}
	)

	switch {
	case o.recordsPath != "":
		loaded, err := memory.LoadRecords(o.recordsPath)
		if err != nil {
			return nil, nil, err
		}
		catalog := memory.UnitsFromRecords(loaded)
		if o.unitsPath != "" {
			if catalog, err = memory.LoadUnits(o.unitsPath); err != nil {
				return nil, nil, err
			}
		}
		records = memory.NewRecordSource(loaded)
		units = memory.NewUnitCatalog(catalog)
	default:
		url := o.dbURL
		if url == "" {
			url = cfg.Database.URL
		}
		if url == "" {
			return nil, nil, fmt.Errorf("no record source: pass --records or --db-url, or set DATABASE_URL")
		}
		db, err := persistence.Connect(ctx, url, cfg.Database.MaxConnections, cfg.Database.MaxIdleTime)
		if err != nil {
			return nil, nil, err
		}
		records = persistence.NewPostgresRecordSource(db, cfg.Database.QueryTimeout)
		units = persistence.NewPostgresUnitCatalog(db, cfg.Database.QueryTimeout)
		cleanup = func() { db.Close() }
	}

	renderOptions := render.DefaultOptions()
	renderOptions.Title = cfg.Report.Title
	renderOptions.Organization = cfg.Report.Organization
	renderOptions.DetailRowLimit = cfg.Report.DetailRowLimit

	uc := usecase.NewReportUseCase(records, units, clock, log, usecase.ReportOptions{
		Location: loc,
		Render:   renderOptions,
	}, pdf.New(cfg.Report.Organization), svg.New())
	return uc, cleanup, nil
}
