package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func categoryRecords(labels ...string) []domain.TicketRecord {
	out := make([]domain.TicketRecord, 0, len(labels))
	for i, l := range labels {
		r := record(i, testNow.Add(-time.Hour), domain.TicketStatusOpen)
		r.CategoryName = l
		out = append(out, r)
	}
	return out
}

func TestComputeDistribution_Basic(t *testing.T) {
	records := categoryRecords("B", "A", "A", "A")

	entries := ComputeDistribution(records, ByCategory, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.DistributionEntry{Label: "A", Count: 3, Percentage: 75.0}, entries[0])
	assert.Equal(t, domain.DistributionEntry{Label: "B", Count: 1, Percentage: 25.0}, entries[1])
}

func TestComputeDistribution_Empty(t *testing.T) {
	entries := ComputeDistribution(nil, ByCategory, 10)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestComputeDistribution_TopN(t *testing.T) {
	records := categoryRecords("A", "B", "B", "C", "C", "C", "D")

	entries := ComputeDistribution(records, ByCategory, 2)

	require.Len(t, entries, 2)
	assert.Equal(t, "C", entries[0].Label)
	assert.Equal(t, "B", entries[1].Label)
}

func TestComputeDistribution_TiesKeepFirstSeenOrder(t *testing.T) {
	records := categoryRecords("Z", "M", "A", "M", "Z", "A")

	entries := ComputeDistribution(records, ByCategory, 0)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Z", "M", "A"}, []string{entries[0].Label, entries[1].Label, entries[2].Label})
}

func TestComputeDistribution_UnknownKey(t *testing.T) {
	records := categoryRecords("", "  ", "A")

	entries := ComputeDistribution(records, ByCategory, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, UnknownLabel, entries[0].Label)
	assert.Equal(t, 2, entries[0].Count)
}

func TestComputeDistribution_Bounds(t *testing.T) {
	for n := 1; n <= 40; n++ {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("K%d", (i*7)%5)
		}
		records := categoryRecords(labels...)

		entries := ComputeDistribution(records, ByCategory, 0)

		sum := 0
		pct := 0.0
		for _, e := range entries {
			assert.GreaterOrEqual(t, e.Percentage, 0.0)
			assert.LessOrEqual(t, e.Percentage, 100.0)
			sum += e.Count
			pct += e.Percentage
		}
		assert.Equal(t, n, sum)
		assert.InDelta(t, 100.0, pct, 0.05*float64(len(entries))+1e-9)
	}
}

func TestComputeDistribution_ByStatus(t *testing.T) {
	records := []domain.TicketRecord{
		record(1, testNow, domain.TicketStatusOpen),
		record(2, testNow, domain.TicketStatusResolved),
		record(3, testNow, domain.TicketStatusResolved),
	}

	entries := ComputeDistribution(records, ByStatus, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, "resolved", entries[0].Label)
	assert.Equal(t, 66.7, entries[0].Percentage)
	assert.Equal(t, 33.3, entries[1].Percentage)
}
