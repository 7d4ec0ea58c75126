package analytics

import (
	"sort"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// Input is everything a report build needs. Records may cover a wider
// range than the report window; Build narrows them itself.
type Input struct {
	ID      string
	Records []domain.TicketRecord
	Units   []domain.Unit
	Filter  domain.FilterSpec
	Now     time.Time
}

// Build runs every aggregator over the same window and assembles the bundle.
// Aggregators share no state, so the result is independent of evaluation order.
func Build(in Input) (*domain.ReportData, error) {
	if err := in.Filter.Validate(); err != nil {
		return nil, err
	}

	window := ResolveWindow(in.Filter.Period, in.Now)
	inWindow := Apply(in.Records, in.Filter, window)

	trendSource := make([]domain.TicketRecord, 0, len(in.Records))
	for _, r := range in.Records {
		if MatchesFilter(r, in.Filter) {
			trendSource = append(trendSource, r)
		}
	}

	rows := DetailRows(inWindow)

	data := &domain.ReportData{
		ID:          in.ID,
		Period:      in.Filter.Period,
		Window:      window,
		GeneratedAt: in.Now,
		KPI:         ComputeKPI(inWindow),
		Trends:      ComputeTrends(trendSource, in.Now),
		Risk:        ComputeRisk(inWindow, in.Units, in.Now),
		Distributions: domain.Distributions{
			Status:      ComputeDistribution(inWindow, ByStatus, 0),
			Category:    ComputeDistribution(inWindow, ByCategory, TopCategories),
			PatientType: ComputeDistribution(inWindow, ByPatientType, TopPatientTypes),
			Region:      ComputeDistribution(inWindow, ByRegion, 0),
			Unit:        ComputeDistribution(inWindow, ByUnit, 0),
		},
		AllRows: rows,
	}

	data.DetailedRows, data.Pagination = Paginate(rows, in.Filter.Page, in.Filter.PageSize)
	return data, nil
}

// DetailRows projects records into table rows, newest first. Rows created
// at the same instant are ordered by ticket number.
func DetailRows(records []domain.TicketRecord) []domain.DetailRow {
	rows := make([]domain.DetailRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, domain.DetailRow{
			TicketNumber: r.TicketNumber,
			Title:        r.Title,
			UnitName:     r.UnitName,
			CategoryName: r.CategoryName,
			Status:       r.Status,
			Priority:     r.Priority,
			CreatedAt:    r.CreatedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].TicketNumber < rows[j].TicketNumber
	})
	return rows
}

// Paginate slices rows for a 1-based page. Pages past the end are empty.
func Paginate(rows []domain.DetailRow, page, pageSize int) ([]domain.DetailRow, domain.Pagination) {
	p := domain.Pagination{
		Page:      page,
		PageSize:  pageSize,
		TotalRows: len(rows),
	}
	if pageSize > 0 {
		p.TotalPages = (len(rows) + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(rows) {
		return []domain.DetailRow{}, p
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end], p
}
