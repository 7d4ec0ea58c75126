package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func unitRecords(unitID string, total, overdue int) []domain.TicketRecord {
	past := testNow.Add(-time.Hour)
	out := make([]domain.TicketRecord, 0, total)
	for i := 0; i < total; i++ {
		r := record(i, testNow.Add(-48*time.Hour), domain.TicketStatusOpen)
		r.ID = fmt.Sprintf("%s-%d", unitID, i)
		r.UnitID = unitID
		if i < overdue {
			r.SLADeadline = ptrTime(past)
		}
		out = append(out, r)
	}
	return out
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		ratio    int
		expected domain.RiskTier
	}{
		{0, domain.RiskTierLow},
		{39, domain.RiskTierLow},
		{40, domain.RiskTierMedium},
		{59, domain.RiskTierMedium},
		{60, domain.RiskTierHigh},
		{79, domain.RiskTierHigh},
		{80, domain.RiskTierCritical},
		{100, domain.RiskTierCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRisk(tt.ratio), "ratio %d", tt.ratio)
	}
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	for r1 := 0; r1 <= 100; r1++ {
		for r2 := 0; r2 <= r1; r2++ {
			assert.GreaterOrEqual(t, ClassifyRisk(r1).Rank(), ClassifyRisk(r2).Rank(), "r1=%d r2=%d", r1, r2)
		}
	}
}

func TestComputeRisk_CriticalUnit(t *testing.T) {
	units := []domain.Unit{{ID: "igd", Name: "IGD", Active: true}}
	records := unitRecords("igd", 5, 4)

	entries := ComputeRisk(records, units, testNow)

	require.Len(t, entries, 1)
	assert.Equal(t, "IGD", entries[0].UnitName)
	assert.Equal(t, 80, entries[0].OverdueRatio)
	assert.Equal(t, 4, entries[0].OverdueCount)
	assert.Equal(t, domain.RiskTierCritical, entries[0].Tier)
}

func TestComputeRisk_ResolvedNotOverdue(t *testing.T) {
	units := []domain.Unit{{ID: "poli", Name: "Poliklinik", Active: true}}
	records := unitRecords("poli", 2, 2)
	records[0].Status = domain.TicketStatusResolved
	records[1].Status = domain.TicketStatusClosed

	entries := ComputeRisk(records, units, testNow)

	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].OverdueRatio)
	assert.Equal(t, domain.RiskTierLow, entries[0].Tier)
}

func TestComputeRisk_RankingAndTruncation(t *testing.T) {
	units := []domain.Unit{
		{ID: "a", Name: "A", Active: true},
		{ID: "b", Name: "B", Active: true},
		{ID: "c", Name: "C", Active: true},
		{ID: "d", Name: "D", Active: false},
		{ID: "e", Name: "E", Active: true},
		{ID: "f", Name: "F", Active: true},
		{ID: "g", Name: "G", Active: true},
	}

	var records []domain.TicketRecord
	records = append(records, unitRecords("a", 10, 2)...) // 20
	records = append(records, unitRecords("b", 10, 5)...) // 50
	records = append(records, unitRecords("c", 10, 5)...) // 50, tie with b
	records = append(records, unitRecords("d", 10, 10)...)
	records = append(records, unitRecords("e", 4, 3)...) // 75
	records = append(records, unitRecords("f", 10, 1)...) // 10

	entries := ComputeRisk(records, units, testNow)

	require.Len(t, entries, 4)
	names := []string{entries[0].UnitName, entries[1].UnitName, entries[2].UnitName, entries[3].UnitName}
	assert.Equal(t, []string{"E", "B", "C", "A"}, names)
	assert.Equal(t, domain.RiskTierHigh, entries[0].Tier)
	assert.Equal(t, domain.RiskTierMedium, entries[1].Tier)
}

func TestComputeRisk_EmptyInput(t *testing.T) {
	units := []domain.Unit{{ID: "a", Name: "A", Active: true}}

	entries := ComputeRisk(nil, units, testNow)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Total)
	assert.Equal(t, 0, entries[0].OverdueRatio)
	assert.Equal(t, domain.RiskTierLow, entries[0].Tier)

	assert.Empty(t, ComputeRisk(nil, nil, testNow))
}
