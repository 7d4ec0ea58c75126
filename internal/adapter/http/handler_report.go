package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/metrics"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/usecase"
	"github.com/Mukhsinh/JEMPOL-sub007/pkg/apperror"
)

// ReportUseCase defines the behavior the handler depends on.
// Using an interface here makes the handler easily testable with mocks.
type ReportUseCase interface {
	Summary(ctx context.Context, filter domain.FilterSpec) (*domain.ReportData, error)
	Document(ctx context.Context, filter domain.FilterSpec, format render.Format) (*usecase.DocumentResult, error)
}

// ReportHandler handles HTTP requests for reports
type ReportHandler struct {
	reportUseCase ReportUseCase
	limiter       ports.RateLimiter
	retryAfter    time.Duration
	log           logger.Logger
}

// NewReportHandler creates a new report handler. retryAfter is advertised to
// throttled clients.
func NewReportHandler(reportUseCase ReportUseCase, limiter ports.RateLimiter, retryAfter time.Duration, log logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		limiter:       limiter,
		retryAfter:    retryAfter,
		log:           log,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/reports/summary", h.Summary).Methods("GET")
	router.HandleFunc("/api/v1/reports/document", h.Document).Methods("GET")
}

// Summary returns the report bundle as JSON
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, apperror.MapError(err))
		return
	}

	data, err := h.reportUseCase.Summary(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "Failed to build report", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Report generated successfully", data)
}

// Document renders the report and returns it as an attachment
func (h *ReportHandler) Document(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, apperror.MapError(err))
		return
	}

	rawFormat := r.URL.Query().Get("format")
	if rawFormat == "" {
		rawFormat = string(render.FormatPDF)
	}
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		writeError(w, apperror.MapError(err))
		return
	}

	if !h.allow(r) {
		metrics.RateLimitedTotal.Inc()
		if h.retryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(h.retryAfter.Seconds())))
		}
		writeError(w, apperror.MapError(domain.ErrRateLimited))
		return
	}

	result, err := h.reportUseCase.Document(r.Context(), filter, format)
	if err != nil {
		h.fail(w, r, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Body)))
	w.Header().Set("X-Report-Pages", strconv.Itoa(result.Pages))
	if result.Report != nil {
		w.Header().Set("X-Report-ID", result.Report.ID)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.Body)
}

// allow consults the limiter; limiter failures let the request through
func (h *ReportHandler) allow(r *http.Request) bool {
	if h.limiter == nil {
		return true
	}
	clientIP := getClientIP(r)
	allowed, err := h.limiter.Allow(r.Context(), "document:ip:"+clientIP)
	if err != nil {
		h.log.Error(r.Context(), "Failed to check rate limit", err, map[string]interface{}{
			"ip": clientIP,
		})
		return true
	}
	if !allowed {
		h.log.Warn(r.Context(), "Report document rate limit exceeded", map[string]interface{}{
			"ip":   clientIP,
			"path": r.URL.Path,
		})
	}
	return allowed
}

func (h *ReportHandler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	appErr := apperror.MapError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.log.Error(r.Context(), message, err, map[string]interface{}{"code": appErr.Code})
	}
	writeError(w, appErr)
}

// parseFilter reads the report filter from the query string. Missing page
// values take the defaults; malformed ones are rejected, never clamped.
func parseFilter(r *http.Request) (domain.FilterSpec, error) {
	q := r.URL.Query()
	filter := domain.NewFilterSpec(domain.ParsePeriod(q.Get("period")))

	if v := strings.TrimSpace(q.Get("unit_id")); v != "" {
		filter.UnitID = &v
	}
	if v := strings.TrimSpace(q.Get("category_id")); v != "" {
		filter.CategoryID = &v
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		status := domain.TicketStatus(v)
		if !status.Valid() {
			return filter, domain.NewInvalidFilterError("status", v)
		}
		filter.Status = &status
	}
	if v := strings.TrimSpace(q.Get("priority")); v != "" {
		priority := domain.TicketPriority(v)
		if !priority.Valid() {
			return filter, domain.NewInvalidFilterError("priority", v)
		}
		filter.Priority = &priority
	}

	var err error
	if filter.Page, err = queryInt(q.Get("page"), domain.DefaultPage); err != nil {
		return filter, domain.NewInvalidFilterError("page", q.Get("page"))
	}
	if filter.PageSize, err = queryInt(q.Get("page_size"), domain.DefaultPageSize); err != nil {
		return filter, domain.NewInvalidFilterError("page_size", q.Get("page_size"))
	}
	return filter, nil
}

func queryInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
