// Package memory serves records and units from in-process slices, loaded
// from JSON fixture files for the CLI and tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/analytics"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
)

// RecordSource holds a fixed record collection
type RecordSource struct {
	records []domain.TicketRecord
}

func NewRecordSource(records []domain.TicketRecord) *RecordSource {
	return &RecordSource{records: records}
}

var _ ports.RecordSource = (*RecordSource)(nil)

// RecordsSince returns a copy of the matching records in stored order
func (s *RecordSource) RecordsSince(ctx context.Context, since time.Time, filter domain.FilterSpec) ([]domain.TicketRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.TicketRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.CreatedAt.Before(since) || !analytics.MatchesFilter(r, filter) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// UnitCatalog holds a fixed unit list
type UnitCatalog struct {
	units []domain.Unit
}

func NewUnitCatalog(units []domain.Unit) *UnitCatalog {
	return &UnitCatalog{units: units}
}

var _ ports.UnitCatalog = (*UnitCatalog)(nil)

func (c *UnitCatalog) Units(ctx context.Context) ([]domain.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Unit(nil), c.units...), nil
}

// UnitsFromRecords derives an active unit per distinct unit id, in order of
// first appearance. Used when no unit catalog file is supplied.
func UnitsFromRecords(records []domain.TicketRecord) []domain.Unit {
	seen := make(map[string]bool)
	var units []domain.Unit
	for _, r := range records {
		if r.UnitID == "" || seen[r.UnitID] {
			continue
		}
		seen[r.UnitID] = true
		units = append(units, domain.Unit{ID: r.UnitID, Name: r.UnitName, Active: true})
	}
	return units
}

// LoadRecords reads a JSON array of records
func LoadRecords(path string) ([]domain.TicketRecord, error) {
	var records []domain.TicketRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadUnits reads a JSON array of units
func LoadUnits(path string) ([]domain.Unit, error) {
	var units []domain.Unit
	if err := readJSON(path, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func readJSON(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
