package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
)

// PostgresRecordSource reads complaint tickets joined with their unit,
// category and patient type names
type PostgresRecordSource struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgresRecordSource creates a new PostgreSQL record source. A positive
// timeout bounds each query.
func NewPostgresRecordSource(db *sqlx.DB, timeout time.Duration) ports.RecordSource {
	return &PostgresRecordSource{db: db, timeout: timeout}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type recordRow struct {
	ID               string         `db:"id"`
	TicketNumber     string         `db:"ticket_number"`
	Title            string         `db:"title"`
	Status           string         `db:"status"`
	Priority         string         `db:"priority"`
	UnitID           sql.NullString `db:"unit_id"`
	UnitName         sql.NullString `db:"unit_name"`
	CategoryID       sql.NullString `db:"category_id"`
	CategoryName     sql.NullString `db:"category_name"`
	PatientTypeID    sql.NullString `db:"patient_type_id"`
	PatientTypeName  sql.NullString `db:"patient_type_name"`
	RespondentRegion sql.NullString `db:"respondent_region"`
	CreatedAt        time.Time      `db:"created_at"`
	FirstResponseAt  sql.NullTime   `db:"first_response_at"`
	ResolvedAt       sql.NullTime   `db:"resolved_at"`
	SLADeadline      sql.NullTime   `db:"sla_deadline"`
}

const recordSelect = `
		SELECT t.id, t.ticket_number, t.title, t.status, t.priority,
			t.unit_id, u.name AS unit_name,
			t.category_id, c.name AS category_name,
			t.patient_type_id, p.name AS patient_type_name,
			t.respondent_region, t.created_at, t.first_response_at, t.resolved_at, t.sla_deadline
		FROM tickets t
		LEFT JOIN units u ON u.id = t.unit_id
		LEFT JOIN service_categories c ON c.id = t.category_id
		LEFT JOIN patient_types p ON p.id = t.patient_type_id`

// buildRecordQuery pushes the time bound and equality filters down to SQL
func buildRecordQuery(since time.Time, filter domain.FilterSpec) (string, []interface{}) {
	conditions := []string{"t.created_at >= $1"}
	args := []interface{}{since}
	argIndex := 2

	add := func(column, value string) {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}
	if filter.UnitID != nil {
		add("t.unit_id", *filter.UnitID)
	}
	if filter.CategoryID != nil {
		add("t.category_id", *filter.CategoryID)
	}
	if filter.Status != nil {
		add("t.status", string(*filter.Status))
	}
	if filter.Priority != nil {
		add("t.priority", string(*filter.Priority))
	}

	query := recordSelect + "\n\t\tWHERE " + strings.Join(conditions, " AND ") + "\n\t\tORDER BY t.created_at, t.id"
	return query, args
}

// RecordsSince returns tickets created at or after since
func (r *PostgresRecordSource) RecordsSince(ctx context.Context, since time.Time, filter domain.FilterSpec) ([]domain.TicketRecord, error) {
	query, args := buildRecordQuery(since, filter)

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	records := make([]domain.TicketRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (row recordRow) toDomain() domain.TicketRecord {
	return domain.TicketRecord{
		ID:               row.ID,
		TicketNumber:     row.TicketNumber,
		Title:            row.Title,
		Status:           domain.TicketStatus(row.Status),
		Priority:         domain.TicketPriority(row.Priority),
		UnitID:           row.UnitID.String,
		UnitName:         row.UnitName.String,
		CategoryID:       row.CategoryID.String,
		CategoryName:     row.CategoryName.String,
		PatientTypeID:    row.PatientTypeID.String,
		PatientTypeName:  row.PatientTypeName.String,
		RespondentRegion: row.RespondentRegion.String,
		CreatedAt:        row.CreatedAt,
		FirstResponseAt:  nullTime(row.FirstResponseAt),
		ResolvedAt:       nullTime(row.ResolvedAt),
		SLADeadline:      nullTime(row.SLADeadline),
	}
}

// PostgresUnitCatalog reads the unit table
type PostgresUnitCatalog struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgresUnitCatalog creates a new PostgreSQL unit catalog
func NewPostgresUnitCatalog(db *sqlx.DB, timeout time.Duration) ports.UnitCatalog {
	return &PostgresUnitCatalog{db: db, timeout: timeout}
}

type unitRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

// Units returns every unit ordered by name
func (c *PostgresUnitCatalog) Units(ctx context.Context) ([]domain.Unit, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	var rows []unitRow
	if err := c.db.SelectContext(ctx, &rows, `SELECT id, name, is_active FROM units ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}

	units := make([]domain.Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, domain.Unit{ID: row.ID, Name: row.Name, Active: row.IsActive})
	}
	return units, nil
}
