package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/analytics"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/metrics"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
)

// DocumentResult is a rendered report ready to be served or saved
type DocumentResult struct {
	Filename    string
	ContentType string
	Format      render.Format
	Pages       int
	Body        []byte
	Report      *domain.ReportData
}

// ReportOptions configures a ReportUseCase
type ReportOptions struct {
	Location *time.Location
	Render   render.Options
	// NewID generates report ids; defaults to random UUIDs
	NewID func() string
}

// ReportUseCase builds report bundles and documents
type ReportUseCase struct {
	records  ports.RecordSource
	units    ports.UnitCatalog
	clock    ports.Clock
	log      logger.Logger
	backends map[render.Format]render.Backend
	opts     ReportOptions
}

// NewReportUseCase creates a new report use case
func NewReportUseCase(
	records ports.RecordSource,
	units ports.UnitCatalog,
	clock ports.Clock,
	log logger.Logger,
	opts ReportOptions,
	backends ...render.Backend,
) *ReportUseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	byFormat := make(map[render.Format]render.Backend, len(backends))
	for _, b := range backends {
		byFormat[b.Format()] = b
	}
	return &ReportUseCase{
		records:  records,
		units:    units,
		clock:    clock,
		log:      log,
		backends: byFormat,
		opts:     opts,
	}
}

// Summary builds the report bundle for filter
func (uc *ReportUseCase) Summary(ctx context.Context, filter domain.FilterSpec) (*domain.ReportData, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	now := uc.clock.Now().In(uc.opts.Location)
	window := analytics.ResolveWindow(filter.Period, now)
	since := analytics.FetchSince(window, now)

	records, err := uc.records.RecordsSince(ctx, since, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	units, err := uc.units.Units(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch units: %w", err)
	}

	data, err := analytics.Build(analytics.Input{
		ID:      uc.opts.NewID(),
		Records: records,
		Units:   units,
		Filter:  filter,
		Now:     now,
	})
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.BuildDuration.WithLabelValues(string(filter.Period)).Observe(elapsed.Seconds())
	metrics.RecordsInWindow.WithLabelValues(string(filter.Period)).Set(float64(data.KPI.Total))
	logger.LogPerformance(ctx, uc.log, "report_build", elapsed, map[string]interface{}{
		"report_id": data.ID,
		"period":    filter.Period,
		"fetched":   len(records),
		"in_window": data.KPI.Total,
	})
	return data, nil
}

// Document builds the report and renders it with the backend for format
func (uc *ReportUseCase) Document(ctx context.Context, filter domain.FilterSpec, format render.Format) (*DocumentResult, error) {
	backend, ok := uc.backends[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}

	data, err := uc.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := render.Compose(data, uc.opts.Render)
	if err != nil {
		var overflow *render.RenderOverflowError
		if errors.As(err, &overflow) {
			metrics.RenderOverflowTotal.Inc()
		}
		uc.log.Error(ctx, "Failed to compose report document", err, map[string]interface{}{"report_id": data.ID})
		return nil, fmt.Errorf("compose report: %w", err)
	}

	var buf bytes.Buffer
	if err := backend.Write(&buf, doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	metrics.DocumentsTotal.WithLabelValues(string(format)).Inc()
	metrics.DocumentPages.Observe(float64(doc.PageCount()))
	logger.LogPerformance(ctx, uc.log, "report_render", time.Since(start), map[string]interface{}{
		"report_id": data.ID,
		"format":    format,
		"pages":     doc.PageCount(),
		"bytes":     buf.Len(),
	})

	return &DocumentResult{
		Filename:    Filename(data.Period, data.GeneratedAt, format),
		ContentType: format.ContentType(),
		Format:      format,
		Pages:       doc.PageCount(),
		Body:        buf.Bytes(),
		Report:      data,
	}, nil
}

// Filename returns report-{period}-{YYYY-MM-DD}.{ext}
func Filename(period domain.Period, generatedAt time.Time, format render.Format) string {
	return fmt.Sprintf("report-%s-%s.%s", period, generatedAt.Format("2006-01-02"), format.Extension())
}
