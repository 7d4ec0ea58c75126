package analytics

import (
	"fmt"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

const (
	TrendBucketCount = 4
	TrendBucketWidth = 7 * 24 * time.Hour
)

// ComputeTrends partitions the 28 days before now into four contiguous
// 7-day buckets, oldest first. The buckets do not depend on the report
// period; callers pass records filtered by equality filters only.
func ComputeTrends(records []domain.TicketRecord, now time.Time) []domain.TrendBucket {
	buckets := make([]domain.TrendBucket, TrendBucketCount)
	origin := now.Add(-TrendBucketCount * TrendBucketWidth)
	for i := range buckets {
		start := origin.Add(time.Duration(i) * TrendBucketWidth)
		buckets[i] = domain.TrendBucket{
			Label: fmt.Sprintf("Minggu %d", i+1),
			Start: start,
			End:   start.Add(TrendBucketWidth),
		}
	}

	for _, r := range records {
		if r.CreatedAt.Before(origin) || !r.CreatedAt.Before(now) {
			continue
		}
		idx := int(r.CreatedAt.Sub(origin) / TrendBucketWidth)
		if idx >= TrendBucketCount {
			idx = TrendBucketCount - 1
		}
		buckets[idx].Count++
		if r.Status.IsDone() {
			buckets[idx].Resolved++
		}
	}

	return buckets
}
