package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func TestResolveWindow(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	now := time.Date(2026, 8, 20, 9, 15, 0, 0, jakarta)

	tests := []struct {
		name   string
		period domain.Period
		start  time.Time
	}{
		{"week", domain.PeriodWeek, now.AddDate(0, 0, -7)},
		{"month", domain.PeriodMonth, time.Date(2026, 8, 1, 0, 0, 0, 0, jakarta)},
		{"quarter", domain.PeriodQuarter, time.Date(2026, 7, 1, 0, 0, 0, 0, jakarta)},
		{"year", domain.PeriodYear, time.Date(2026, 1, 1, 0, 0, 0, 0, jakarta)},
		{"unknown falls back to month", domain.Period("fortnight"), time.Date(2026, 8, 1, 0, 0, 0, 0, jakarta)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWindow(tt.period, now)
			assert.True(t, tt.start.Equal(w.Start), "expected start %s, got %s", tt.start, w.Start)
			assert.True(t, now.Equal(w.End))
			assert.False(t, w.End.Before(w.Start))
		})
	}
}

func TestResolveWindow_QuarterBoundaries(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected time.Month
	}{
		{time.January, time.January},
		{time.March, time.January},
		{time.April, time.April},
		{time.June, time.April},
		{time.September, time.July},
		{time.December, time.October},
	}

	for _, tt := range tests {
		now := time.Date(2026, tt.month, 10, 12, 0, 0, 0, time.UTC)
		w := ResolveWindow(domain.PeriodQuarter, now)
		assert.Equal(t, tt.expected, w.Start.Month(), "month %s", tt.month)
		assert.Equal(t, 1, w.Start.Day())
	}
}

func TestResolveWindow_FirstInstantOfMonth(t *testing.T) {
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	w := ResolveWindow(domain.PeriodMonth, now)
	assert.True(t, w.Start.Equal(w.End))
}

func TestFetchSince(t *testing.T) {
	weekWindow := ResolveWindow(domain.PeriodWeek, testNow)
	assert.True(t, FetchSince(weekWindow, testNow).Equal(testNow.Add(-28*24*time.Hour)))

	yearWindow := ResolveWindow(domain.PeriodYear, testNow)
	assert.True(t, FetchSince(yearWindow, testNow).Equal(yearWindow.Start))
}
