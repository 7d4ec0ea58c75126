package domain

import (
	"time"
)

// KPISnapshot holds the scalar indicators of a report window
type KPISnapshot struct {
	Total                  int `json:"total" yaml:"total"`
	Resolved               int `json:"resolved" yaml:"resolved"`
	AverageResponseMinutes int `json:"average_response_minutes" yaml:"average_response_minutes"`
	// ProjectedNextPeriod is a linear placeholder (total x 1.15), not a forecast.
	ProjectedNextPeriod int `json:"projected_next_period" yaml:"projected_next_period"`

	TotalChangePercent    float64 `json:"total_change_percent" yaml:"total_change_percent"`
	ResolvedChangePercent float64 `json:"resolved_change_percent" yaml:"resolved_change_percent"`
	ResponseChangePercent float64 `json:"response_change_percent" yaml:"response_change_percent"`
	// ChangeIsPlaceholder is true while the change percentages are fixed
	// constants rather than a historical comparison.
	ChangeIsPlaceholder bool `json:"change_is_placeholder" yaml:"change_is_placeholder"`
}

// TrendBucket is one fixed-width time bucket of the trend series
type TrendBucket struct {
	Label    string    `json:"label" yaml:"label"`
	Start    time.Time `json:"start" yaml:"start"`
	End      time.Time `json:"end" yaml:"end"`
	Count    int       `json:"count" yaml:"count"`
	Resolved int       `json:"resolved" yaml:"resolved"`
}

// RiskTier classifies a unit's overdue ratio
type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

// Rank orders tiers low < medium < high < critical
func (t RiskTier) Rank() int {
	switch t {
	case RiskTierMedium:
		return 1
	case RiskTierHigh:
		return 2
	case RiskTierCritical:
		return 3
	default:
		return 0
	}
}

// RiskEntry is the SLA risk of one unit
type RiskEntry struct {
	UnitID       string   `json:"unit_id" yaml:"unit_id"`
	UnitName     string   `json:"unit_name" yaml:"unit_name"`
	Total        int      `json:"total" yaml:"total"`
	OverdueCount int      `json:"overdue_count" yaml:"overdue_count"`
	OverdueRatio int      `json:"overdue_ratio" yaml:"overdue_ratio"`
	Tier         RiskTier `json:"tier" yaml:"tier"`
}

// DistributionEntry is one ranked group of a categorical breakdown
type DistributionEntry struct {
	Label      string  `json:"label" yaml:"label"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Distributions groups the categorical breakdowns of a report
type Distributions struct {
	Status      []DistributionEntry `json:"status" yaml:"status"`
	Category    []DistributionEntry `json:"category" yaml:"category"`
	PatientType []DistributionEntry `json:"patient_type" yaml:"patient_type"`
	Region      []DistributionEntry `json:"region" yaml:"region"`
	Unit        []DistributionEntry `json:"unit" yaml:"unit"`
}

// DetailRow is the tabular projection of a TicketRecord
type DetailRow struct {
	TicketNumber string         `json:"ticket_number" yaml:"ticket_number"`
	Title        string         `json:"title" yaml:"title"`
	UnitName     string         `json:"unit_name" yaml:"unit_name"`
	CategoryName string         `json:"category_name" yaml:"category_name"`
	Status       TicketStatus   `json:"status" yaml:"status"`
	Priority     TicketPriority `json:"priority" yaml:"priority"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
}

// Pagination describes the detailed_rows page
type Pagination struct {
	Page       int `json:"page" yaml:"page"`
	PageSize   int `json:"page_size" yaml:"page_size"`
	TotalRows  int `json:"total_rows" yaml:"total_rows"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// ReportData is the bundle handed to the document composer or serialised
// directly as an API response
type ReportData struct {
	ID            string        `json:"id" yaml:"id"`
	Period        Period        `json:"period" yaml:"period"`
	Window        DateWindow    `json:"window" yaml:"window"`
	GeneratedAt   time.Time     `json:"generated_at" yaml:"generated_at"`
	KPI           KPISnapshot   `json:"kpi" yaml:"kpi"`
	Trends        []TrendBucket `json:"trends" yaml:"trends"`
	Risk          []RiskEntry   `json:"risk" yaml:"risk"`
	Distributions Distributions `json:"distributions" yaml:"distributions"`
	DetailedRows  []DetailRow   `json:"detailed_rows" yaml:"detailed_rows"`
	Pagination    Pagination    `json:"pagination" yaml:"pagination"`

	// AllRows holds every filtered row for document composition.
	AllRows []DetailRow `json:"-" yaml:"-"`
}
