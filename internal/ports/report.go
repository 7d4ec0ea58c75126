package ports

import (
	"context"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

// RecordSource supplies complaint records for a report
type RecordSource interface {
	// RecordsSince returns records created at or after since. Implementations
	// may push the equality filters down but must not apply pagination.
	RecordsSince(ctx context.Context, since time.Time, filter domain.FilterSpec) ([]domain.TicketRecord, error)
}

// UnitCatalog supplies the organisational units used by risk analysis
type UnitCatalog interface {
	// Units returns every unit, active or not, in catalog order
	Units(ctx context.Context) ([]domain.Unit, error)
}

// Clock supplies the reference instant of a report
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// RateLimiter throttles expensive operations per key
type RateLimiter interface {
	// Allow records one attempt for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (bool, error)
}
