package analytics

import (
	"math"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// ProjectionFactor is the naive growth multiplier behind ProjectedNextPeriod.
// It is a placeholder heuristic, not a forecast model.
const ProjectionFactor = 1.15

// Period-over-period changes are not derived from history yet; these fixed
// values are reported with ChangeIsPlaceholder set.
const (
	PlaceholderTotalChange    = 12.0
	PlaceholderResolvedChange = 5.0
	PlaceholderResponseChange = -2.0
)

// ComputeKPI reduces the filtered records into a KPISnapshot
func ComputeKPI(records []domain.TicketRecord) domain.KPISnapshot {
	kpi := domain.KPISnapshot{
		Total:                 len(records),
		TotalChangePercent:    PlaceholderTotalChange,
		ResolvedChangePercent: PlaceholderResolvedChange,
		ResponseChangePercent: PlaceholderResponseChange,
		ChangeIsPlaceholder:   true,
	}

	var latencySum float64
	var latencyCount int
	for _, r := range records {
		if r.Status.IsDone() {
			kpi.Resolved++
		}
		if d, ok := r.ResponseLatency(); ok {
			latencySum += d.Minutes()
			latencyCount++
		}
	}

	if latencyCount > 0 {
		kpi.AverageResponseMinutes = int(math.Round(latencySum / float64(latencyCount)))
	}
	kpi.ProjectedNextPeriod = int(math.Round(float64(kpi.Total) * ProjectionFactor))

	return kpi
}
