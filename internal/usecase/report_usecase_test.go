package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// MockRecordSource is a mock implementation of ports.RecordSource
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) RecordsSince(ctx context.Context, since time.Time, filter domain.FilterSpec) ([]domain.TicketRecord, error) {
	args := m.Called(ctx, since, filter)
	records, _ := args.Get(0).([]domain.TicketRecord)
	return records, args.Error(1)
}

// MockUnitCatalog is a mock implementation of ports.UnitCatalog
type MockUnitCatalog struct {
	mock.Mock
}

func (m *MockUnitCatalog) Units(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	units, _ := args.Get(0).([]domain.Unit)
	return units, args.Error(1)
}

// textBackend writes one line per text primitive
type textBackend struct{}

func (textBackend) Format() render.Format { return render.FormatSVG }

func (textBackend) Write(w io.Writer, doc *render.Document) error {
	for _, p := range doc.Pages() {
		for _, op := range p.Canvas.Ops() {
			if t, ok := op.(draw.Text); ok {
				io.WriteString(w, t.Value+"\n")
			}
		}
	}
	_, err := io.WriteString(w, doc.Title())
	return err
}

var jakarta = time.FixedZone("WIB", 7*3600)

// 2026-10-15 21:30 WIB
var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func sampleRecords() []domain.TicketRecord {
	deadline := fixedNow.Add(-time.Hour)
	return []domain.TicketRecord{
		{ID: "1", TicketNumber: "TKT-1", Status: domain.TicketStatusOpen, UnitID: "igd", UnitName: "IGD", CategoryName: "Pelayanan", CreatedAt: fixedNow.Add(-24 * time.Hour), SLADeadline: &deadline},
		{ID: "2", TicketNumber: "TKT-2", Status: domain.TicketStatusResolved, UnitID: "igd", UnitName: "IGD", CategoryName: "Fasilitas", CreatedAt: fixedNow.Add(-48 * time.Hour)},
		{ID: "3", TicketNumber: "TKT-3", Status: domain.TicketStatusClosed, UnitID: "poli", UnitName: "Poliklinik", CategoryName: "Pelayanan", CreatedAt: fixedNow.Add(-20 * 24 * time.Hour)},
	}
}

func sampleUnits() []domain.Unit {
	return []domain.Unit{{ID: "igd", Name: "IGD", Active: true}, {ID: "poli", Name: "Poliklinik", Active: true}}
}

func newUseCase(records *MockRecordSource, units *MockUnitCatalog) *ReportUseCase {
	return NewReportUseCase(records, units, ports.FixedClock(fixedNow), logger.NewNop(), ReportOptions{
		Location: jakarta,
		Render:   render.DefaultOptions(),
		NewID:    func() string { return "rpt-test" },
	}, textBackend{})
}

func TestReportUseCase_Summary(t *testing.T) {
	records := &MockRecordSource{}
	units := &MockUnitCatalog{}
	filter := domain.NewFilterSpec(domain.PeriodMonth)

	// month window starts 2026-10-01 WIB; trends reach back 28 days to 2026-09-17 21:30 WIB
	expectedSince := time.Date(2026, 9, 17, 21, 30, 0, 0, jakarta)
	records.On("RecordsSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		return since.Equal(expectedSince)
	}), filter).Return(sampleRecords(), nil)
	units.On("Units", mock.Anything).Return(sampleUnits(), nil)

	data, err := newUseCase(records, units).Summary(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, "rpt-test", data.ID)
	// the 20-day-old record is fetched for the trend but lies before the month window
	assert.Equal(t, 2, data.KPI.Total)
	assert.Equal(t, 1, data.KPI.Resolved)
	assert.Equal(t, 3, data.Trends[0].Count+data.Trends[1].Count+data.Trends[2].Count+data.Trends[3].Count)
	assert.True(t, data.Window.Start.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, jakarta)))
	assert.Equal(t, jakarta, data.GeneratedAt.Location())
	require.NotEmpty(t, data.Risk)
	assert.Equal(t, "IGD", data.Risk[0].UnitName)
	assert.Equal(t, 50, data.Risk[0].OverdueRatio)
	records.AssertExpectations(t)
	units.AssertExpectations(t)
}

func TestReportUseCase_Summary_InvalidFilter(t *testing.T) {
	records := &MockRecordSource{}
	units := &MockUnitCatalog{}
	filter := domain.NewFilterSpec(domain.PeriodMonth)
	filter.Page = 0

	_, err := newUseCase(records, units).Summary(context.Background(), filter)

	var invalid *domain.InvalidFilterError
	assert.True(t, errors.As(err, &invalid))
	records.AssertNotCalled(t, "RecordsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportUseCase_Summary_PropagatesCollaboratorErrors(t *testing.T) {
	fetchErr := errors.New("connection reset")

	t.Run("records", func(t *testing.T) {
		records := &MockRecordSource{}
		units := &MockUnitCatalog{}
		records.On("RecordsSince", mock.Anything, mock.Anything, mock.Anything).Return(nil, fetchErr)

		_, err := newUseCase(records, units).Summary(context.Background(), domain.NewFilterSpec(domain.PeriodWeek))

		assert.ErrorIs(t, err, fetchErr)
		units.AssertNotCalled(t, "Units", mock.Anything)
	})

	t.Run("units", func(t *testing.T) {
		records := &MockRecordSource{}
		units := &MockUnitCatalog{}
		records.On("RecordsSince", mock.Anything, mock.Anything, mock.Anything).Return(sampleRecords(), nil)
		units.On("Units", mock.Anything).Return(nil, fetchErr)

		_, err := newUseCase(records, units).Summary(context.Background(), domain.NewFilterSpec(domain.PeriodWeek))

		assert.ErrorIs(t, err, fetchErr)
	})
}

func TestReportUseCase_Document(t *testing.T) {
	records := &MockRecordSource{}
	units := &MockUnitCatalog{}
	records.On("RecordsSince", mock.Anything, mock.Anything, mock.Anything).Return(sampleRecords(), nil)
	units.On("Units", mock.Anything).Return(sampleUnits(), nil)

	result, err := newUseCase(records, units).Document(context.Background(), domain.NewFilterSpec(domain.PeriodYear), render.FormatSVG)

	require.NoError(t, err)
	assert.Equal(t, "report-year-2026-10-15.svg", result.Filename)
	assert.Equal(t, "image/svg+xml", result.ContentType)
	assert.GreaterOrEqual(t, result.Pages, 1)
	assert.True(t, strings.HasSuffix(string(result.Body), "Laporan Pengaduan Pasien"))
	assert.Contains(t, string(result.Body), "Halaman 1 dari")
	assert.Equal(t, 3, result.Report.KPI.Total)
}

func TestReportUseCase_Document_UnknownFormat(t *testing.T) {
	records := &MockRecordSource{}
	units := &MockUnitCatalog{}

	_, err := newUseCase(records, units).Document(context.Background(), domain.NewFilterSpec(domain.PeriodMonth), render.FormatPDF)

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	records.AssertNotCalled(t, "RecordsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 1, 5, 23, 0, 0, 0, jakarta)
	assert.Equal(t, "report-week-2026-01-05.pdf", Filename(domain.PeriodWeek, at, render.FormatPDF))
}
