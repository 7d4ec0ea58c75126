package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// RiskTopN is the number of units kept in the risk ranking
const RiskTopN = 4

// ClassifyRisk maps an overdue ratio (whole percent) to a tier.
// Thresholds are checked high to low and the first match wins.
func ClassifyRisk(ratio int) domain.RiskTier {
	switch {
	case ratio >= 80:
		return domain.RiskTierCritical
	case ratio >= 60:
		return domain.RiskTierHigh
	case ratio >= 40:
		return domain.RiskTierMedium
	default:
		return domain.RiskTierLow
	}
}

// ComputeRisk ranks active units by their share of overdue, unresolved
// tickets. Ties keep catalog order.
func ComputeRisk(records []domain.TicketRecord, units []domain.Unit, now time.Time) []domain.RiskEntry {
	type tally struct{ total, overdue int }
	byUnit := make(map[string]*tally, len(units))
	for _, u := range units {
		if u.Active {
			byUnit[u.ID] = &tally{}
		}
	}

	for _, r := range records {
		t, ok := byUnit[r.UnitID]
		if !ok {
			continue
		}
		t.total++
		if r.IsOverdue(now) {
			t.overdue++
		}
	}

	entries := make([]domain.RiskEntry, 0, len(byUnit))
	for _, u := range units {
		if !u.Active {
			continue
		}
		t := byUnit[u.ID]
		ratio := 0
		if t.total > 0 {
			ratio = int(math.Round(float64(t.overdue) / float64(t.total) * 100))
		}
		entries = append(entries, domain.RiskEntry{
			UnitID:       u.ID,
			UnitName:     u.Name,
			Total:        t.total,
			OverdueCount: t.overdue,
			OverdueRatio: ratio,
			Tier:         ClassifyRisk(ratio),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OverdueRatio > entries[j].OverdueRatio
	})

	if len(entries) > RiskTopN {
		entries = entries[:RiskTopN]
	}
	return entries
}
