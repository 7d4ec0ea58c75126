package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func TestComputeKPI_Empty(t *testing.T) {
	kpi := ComputeKPI(nil)

	assert.Equal(t, 0, kpi.Total)
	assert.Equal(t, 0, kpi.Resolved)
	assert.Equal(t, 0, kpi.AverageResponseMinutes)
	assert.Equal(t, 0, kpi.ProjectedNextPeriod)
	assert.True(t, kpi.ChangeIsPlaceholder)
}

func TestComputeKPI_AverageResponse(t *testing.T) {
	base := time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC)
	statuses := []domain.TicketStatus{
		domain.TicketStatusResolved, domain.TicketStatusClosed, domain.TicketStatusResolved,
		domain.TicketStatusClosed, domain.TicketStatusResolved, domain.TicketStatusClosed,
		domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusEscalated,
		domain.TicketStatusOpen,
	}

	records := make([]domain.TicketRecord, 0, len(statuses))
	for i, s := range statuses {
		records = append(records, record(i, base, s))
	}
	records[0].FirstResponseAt = ptrTime(base.Add(10 * time.Minute))
	records[3].FirstResponseAt = ptrTime(base.Add(20 * time.Minute))
	records[7].FirstResponseAt = ptrTime(base.Add(30 * time.Minute))

	kpi := ComputeKPI(records)

	assert.Equal(t, 10, kpi.Total)
	assert.Equal(t, 6, kpi.Resolved)
	assert.Equal(t, 20, kpi.AverageResponseMinutes)
	assert.Equal(t, 12, kpi.ProjectedNextPeriod)
}

func TestComputeKPI_RoundsAverageToNearestMinute(t *testing.T) {
	base := time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC)
	a := record(1, base, domain.TicketStatusOpen)
	a.FirstResponseAt = ptrTime(base.Add(10 * time.Minute))
	b := record(2, base, domain.TicketStatusOpen)
	b.FirstResponseAt = ptrTime(base.Add(11 * time.Minute))

	kpi := ComputeKPI([]domain.TicketRecord{a, b})
	assert.Equal(t, 11, kpi.AverageResponseMinutes)
}

func TestComputeKPI_Projection(t *testing.T) {
	tests := []struct {
		total    int
		expected int
	}{
		{1, 1},
		{3, 3},
		{4, 5},
		{10, 12},
		{100, 115},
	}

	for _, tt := range tests {
		records := make([]domain.TicketRecord, tt.total)
		kpi := ComputeKPI(records)
		assert.Equal(t, tt.expected, kpi.ProjectedNextPeriod, "total %d", tt.total)
	}
}

func TestComputeKPI_PlaceholderChanges(t *testing.T) {
	kpi := ComputeKPI([]domain.TicketRecord{record(1, testNow, domain.TicketStatusOpen)})

	assert.Equal(t, 12.0, kpi.TotalChangePercent)
	assert.Equal(t, 5.0, kpi.ResolvedChangePercent)
	assert.Equal(t, -2.0, kpi.ResponseChangePercent)
	assert.True(t, kpi.ChangeIsPlaceholder)
}
