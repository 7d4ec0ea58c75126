package analytics

import (
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// MatchesFilter applies the equality filters of f, ignoring the period
func MatchesFilter(r domain.TicketRecord, f domain.FilterSpec) bool {
	if f.UnitID != nil && r.UnitID != *f.UnitID {
		return false
	}
	if f.CategoryID != nil && r.CategoryID != *f.CategoryID {
		return false
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	if f.Priority != nil && r.Priority != *f.Priority {
		return false
	}
	return true
}

// Apply returns the records inside window that match the equality filters.
// Input order is preserved and the input slice is never modified.
func Apply(records []domain.TicketRecord, f domain.FilterSpec, window domain.DateWindow) []domain.TicketRecord {
	out := make([]domain.TicketRecord, 0, len(records))
	for _, r := range records {
		if !window.Contains(r.CreatedAt) {
			continue
		}
		if !MatchesFilter(r, f) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func round(value float64, places int) float64 {
	factor := 1.0
	for i := 0; i < places; i++ {
		factor *= 10
	}
	return float64(int64(value*factor+0.5)) / factor
}
