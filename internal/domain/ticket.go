package domain

import (
	"strings"
	"time"
)

// TicketStatus represents the lifecycle status of a complaint ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusEscalated  TicketStatus = "escalated"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsDone reports whether the status counts as resolved for reporting
func (s TicketStatus) IsDone() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// Valid reports whether s is one of the known statuses
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusEscalated, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority represents the priority of a ticket
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// Valid reports whether p is one of the known priorities
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// TicketRecord is one reportable complaint or survey event.
// Records are treated as read-only by every report component.
type TicketRecord struct {
	ID               string         `json:"id"`
	TicketNumber     string         `json:"ticket_number"`
	Title            string         `json:"title"`
	Status           TicketStatus   `json:"status"`
	Priority         TicketPriority `json:"priority"`
	UnitID           string         `json:"unit_id"`
	UnitName         string         `json:"unit_name"`
	CategoryID       string         `json:"category_id"`
	CategoryName     string         `json:"category_name"`
	PatientTypeID    string         `json:"patient_type_id"`
	PatientTypeName  string         `json:"patient_type_name"`
	RespondentRegion string         `json:"respondent_region,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	FirstResponseAt  *time.Time     `json:"first_response_at,omitempty"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
	SLADeadline      *time.Time     `json:"sla_deadline,omitempty"`
}

// ResponseLatency returns the time to first response and whether both
// timestamps are present
func (t TicketRecord) ResponseLatency() (time.Duration, bool) {
	if t.FirstResponseAt == nil || t.CreatedAt.IsZero() {
		return 0, false
	}
	return t.FirstResponseAt.Sub(t.CreatedAt), true
}

// IsOverdue reports whether the ticket is past its SLA deadline at now and
// still unresolved
func (t TicketRecord) IsOverdue(now time.Time) bool {
	if t.SLADeadline == nil || t.Status.IsDone() {
		return false
	}
	return t.SLADeadline.Before(now)
}

// Unit is an organisational unit (ward, clinic, department) from the unit catalog
type Unit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Period is the logical reporting period selector
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod maps a selector string to a Period. Unknown values fall back to month.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodQuarter:
		return PeriodQuarter
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodMonth
	}
}

// FilterSpec describes which records a report covers
type FilterSpec struct {
	Period     Period          `json:"period"`
	UnitID     *string         `json:"unit_id,omitempty"`
	CategoryID *string         `json:"category_id,omitempty"`
	Status     *TicketStatus   `json:"status,omitempty"`
	Priority   *TicketPriority `json:"priority,omitempty"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// Default pagination for the tabular section
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// NewFilterSpec returns a filter for period with default pagination
func NewFilterSpec(period Period) FilterSpec {
	return FilterSpec{
		Period:   period,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate rejects non-positive pagination values
func (f FilterSpec) Validate() error {
	if f.Page < 1 {
		return NewInvalidFilterError("page", f.Page)
	}
	if f.PageSize < 1 {
		return NewInvalidFilterError("page_size", f.PageSize)
	}
	return nil
}

// DateWindow is a resolved [Start, End) instant pair
type DateWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Contains reports whether t falls inside the half-open window
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
