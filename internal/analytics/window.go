// Package analytics aggregates complaint records into report indicators.
// Every function is a pure reduction over its inputs; the reference instant
// is always passed in by the caller.
package analytics

import (
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// ResolveWindow turns a period selector and a reference instant into the
// report window. Calendar boundaries are computed in now's location.
func ResolveWindow(period domain.Period, now time.Time) domain.DateWindow {
	loc := now.Location()
	var start time.Time

	switch period {
	case domain.PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case domain.PeriodQuarter:
		firstMonth := ((int(now.Month())-1)/3)*3 + 1
		start = time.Date(now.Year(), time.Month(firstMonth), 1, 0, 0, 0, 0, loc)
	case domain.PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}

	return domain.DateWindow{Start: start, End: now}
}

// FetchSince returns the earliest creation instant any report component
// needs, so a record source can be queried once for the whole report.
func FetchSince(window domain.DateWindow, now time.Time) time.Time {
	trendStart := now.Add(-TrendBucketCount * TrendBucketWidth)
	if trendStart.Before(window.Start) {
		return trendStart
	}
	return window.Start
}
