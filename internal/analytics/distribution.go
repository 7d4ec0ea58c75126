package analytics

import (
	"sort"
	"strings"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// UnknownLabel groups records whose key is empty
const UnknownLabel = "Tidak Diketahui"

// Section limits used by the report composer
const (
	TopCategories   = 10
	TopPatientTypes = 15
	TopUnitsChart   = 5
)

// KeyFunc extracts the grouping key of a record
type KeyFunc func(domain.TicketRecord) string

// Common key extractors
var (
	ByStatus      KeyFunc = func(r domain.TicketRecord) string { return string(r.Status) }
	ByCategory    KeyFunc = func(r domain.TicketRecord) string { return r.CategoryName }
	ByPatientType KeyFunc = func(r domain.TicketRecord) string { return r.PatientTypeName }
	ByRegion      KeyFunc = func(r domain.TicketRecord) string { return r.RespondentRegion }
	ByUnit        KeyFunc = func(r domain.TicketRecord) string { return r.UnitName }
)

// ComputeDistribution groups records by key and ranks the groups by count,
// descending. Groups with equal counts keep the order in which their key
// first appeared. limit <= 0 keeps every group.
func ComputeDistribution(records []domain.TicketRecord, key KeyFunc, limit int) []domain.DistributionEntry {
	total := len(records)
	if total == 0 {
		return []domain.DistributionEntry{}
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			k = UnknownLabel
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]domain.DistributionEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, domain.DistributionEntry{
			Label:      k,
			Count:      counts[k],
			Percentage: round(float64(counts[k])/float64(total)*100, 1),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
