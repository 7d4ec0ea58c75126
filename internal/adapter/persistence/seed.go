package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

type lookupRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type ticketRow struct {
	ID               string     `db:"id"`
	TicketNumber     string     `db:"ticket_number"`
	Title            string     `db:"title"`
	Status           string     `db:"status"`
	Priority         string     `db:"priority"`
	UnitID           *string    `db:"unit_id"`
	CategoryID       *string    `db:"category_id"`
	PatientTypeID    *string    `db:"patient_type_id"`
	RespondentRegion *string    `db:"respondent_region"`
	CreatedAt        time.Time  `db:"created_at"`
	FirstResponseAt  *time.Time `db:"first_response_at"`
	ResolvedAt       *time.Time `db:"resolved_at"`
	SLADeadline      *time.Time `db:"sla_deadline"`
}

// seedSet is the normalised content of a fixture load
type seedSet struct {
	units        []unitRow
	categories   []lookupRow
	patientTypes []lookupRow
	tickets      []ticketRow
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// buildSeedSet derives lookup rows from the records so every foreign key
// resolves. Catalog units win over names seen on records.
func buildSeedSet(units []domain.Unit, records []domain.TicketRecord) seedSet {
	var set seedSet
	seenUnit := map[string]bool{}
	for _, u := range units {
		if u.ID == "" || seenUnit[u.ID] {
			continue
		}
		seenUnit[u.ID] = true
		set.units = append(set.units, unitRow{ID: u.ID, Name: u.Name, IsActive: u.Active})
	}

	seenCategory := map[string]bool{}
	seenPatientType := map[string]bool{}
	for _, r := range records {
		if r.UnitID != "" && !seenUnit[r.UnitID] {
			seenUnit[r.UnitID] = true
			set.units = append(set.units, unitRow{ID: r.UnitID, Name: r.UnitName, IsActive: true})
		}
		if r.CategoryID != "" && !seenCategory[r.CategoryID] {
			seenCategory[r.CategoryID] = true
			set.categories = append(set.categories, lookupRow{ID: r.CategoryID, Name: r.CategoryName})
		}
		if r.PatientTypeID != "" && !seenPatientType[r.PatientTypeID] {
			seenPatientType[r.PatientTypeID] = true
			set.patientTypes = append(set.patientTypes, lookupRow{ID: r.PatientTypeID, Name: r.PatientTypeName})
		}

		priority := string(r.Priority)
		if priority == "" {
			priority = string(domain.TicketPriorityMedium)
		}
		set.tickets = append(set.tickets, ticketRow{
			ID:               r.ID,
			TicketNumber:     r.TicketNumber,
			Title:            r.Title,
			Status:           string(r.Status),
			Priority:         priority,
			UnitID:           optional(r.UnitID),
			CategoryID:       optional(r.CategoryID),
			PatientTypeID:    optional(r.PatientTypeID),
			RespondentRegion: optional(r.RespondentRegion),
			CreatedAt:        r.CreatedAt,
			FirstResponseAt:  r.FirstResponseAt,
			ResolvedAt:       r.ResolvedAt,
			SLADeadline:      r.SLADeadline,
		})
	}
	return set
}

const (
	upsertUnit = `
		INSERT INTO units (id, name, is_active) VALUES (:id, :name, :is_active)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, is_active = EXCLUDED.is_active`
	upsertCategory = `
		INSERT INTO service_categories (id, name) VALUES (:id, :name)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`
	upsertPatientType = `
		INSERT INTO patient_types (id, name) VALUES (:id, :name)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`
	upsertTicket = `
		INSERT INTO tickets (id, ticket_number, title, status, priority, unit_id, category_id,
			patient_type_id, respondent_region, created_at, first_response_at, resolved_at, sla_deadline)
		VALUES (:id, :ticket_number, :title, :status, :priority, :unit_id, :category_id,
			:patient_type_id, :respondent_region, :created_at, :first_response_at, :resolved_at, :sla_deadline)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			status = EXCLUDED.status,
			priority = EXCLUDED.priority,
			first_response_at = EXCLUDED.first_response_at,
			resolved_at = EXCLUDED.resolved_at,
			sla_deadline = EXCLUDED.sla_deadline`
)

// Seed upserts units and records in one transaction and returns the number
// of tickets written
func Seed(ctx context.Context, db *sqlx.DB, units []domain.Unit, records []domain.TicketRecord) (int, error) {
	set := buildSeedSet(units, records)

	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, u := range set.units {
			if _, err := tx.NamedExecContext(ctx, upsertUnit, u); err != nil {
				return fmt.Errorf("seed unit %s: %w", u.ID, err)
			}
		}
		for _, c := range set.categories {
			if _, err := tx.NamedExecContext(ctx, upsertCategory, c); err != nil {
				return fmt.Errorf("seed category %s: %w", c.ID, err)
			}
		}
		for _, p := range set.patientTypes {
			if _, err := tx.NamedExecContext(ctx, upsertPatientType, p); err != nil {
				return fmt.Errorf("seed patient type %s: %w", p.ID, err)
			}
		}
		for _, t := range set.tickets {
			if _, err := tx.NamedExecContext(ctx, upsertTicket, t); err != nil {
				return fmt.Errorf("seed ticket %s: %w", t.TicketNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(set.tickets), nil
}
