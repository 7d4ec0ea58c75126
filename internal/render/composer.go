package render

import (
	"fmt"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/analytics"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// DefaultDetailRowLimit caps the detail table of a document
const DefaultDetailRowLimit = 100

// Section names in composition order
const (
	SectionHeader      = "header"
	SectionKPI         = "kpi"
	SectionKPINote     = "kpi-note"
	SectionStatusChart = "status-chart"
	SectionUnitChart   = "unit-chart"
	SectionStatusTable = "status-table"
	SectionTrendChart  = "trend-chart"
	SectionCategory    = "category-table"
	SectionPatientType = "patient-type-table"
	SectionDetail      = "detail-table"
	SectionDetailNote  = "detail-notice"
)

// Options controls document composition
type Options struct {
	Title          string
	Organization   string
	DetailRowLimit int
	Layout         Layout
}

func DefaultOptions() Options {
	return Options{
		Title:          "Laporan Pengaduan Pasien",
		DetailRowLimit: DefaultDetailRowLimit,
		Layout:         A4(),
	}
}

// Compose lays the report bundle out as a paginated document and stamps
// footers once every section is placed.
func Compose(data *domain.ReportData, opts Options) (*Document, error) {
	if opts.DetailRowLimit <= 0 {
		opts.DetailRowLimit = DefaultDetailRowLimit
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = A4()
	}

	doc := NewDocument(opts.Layout)
	doc.SetTitle(opts.Title)

	place := func(s Section) error { return doc.Place(s) }
	table := func(t *Table) error { return PlaceTable(doc, t) }

	steps := []func() error{
		func() error { return place(headerSection(data, opts)) },
		func() error { return table(kpiTable(data.KPI)) },
		func() error {
			if !data.KPI.ChangeIsPlaceholder {
				return nil
			}
			return place(&Paragraph{ID: SectionKPINote, Gap: 4, Lines: []Line{{
				Text:  "* Persentase perubahan adalah nilai acuan sementara, belum dibandingkan dengan periode sebelumnya.",
				Size:  7.5,
				Color: draw.Gray,
			}}})
		},
		func() error { return place(statusPie(data.Distributions.Status)) },
		func() error { return place(unitBars(data.Distributions.Unit)) },
		func() error { return table(statusTable(data.Distributions.Status)) },
		func() error { return place(trendLine(data.Trends)) },
		func() error {
			return table(distributionTable(SectionCategory, "Distribusi Kategori", "Kategori", data.Distributions.Category))
		},
		func() error {
			return table(distributionTable(SectionPatientType, "Distribusi Jenis Pasien", "Jenis Pasien", data.Distributions.PatientType))
		},
		func() error {
			shown := data.AllRows
			if len(shown) > opts.DetailRowLimit {
				shown = shown[:opts.DetailRowLimit]
			}
			if err := table(detailTable(shown)); err != nil {
				return err
			}
			if len(shown) == len(data.AllRows) {
				return nil
			}
			return place(&Paragraph{ID: SectionDetailNote, Gap: 2, Lines: []Line{{
				Text:  DetailNotice(len(shown), len(data.AllRows)),
				Size:  8.5,
				Color: draw.Gray,
			}}})
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	doc.StampFooters(data.GeneratedAt)
	return doc, nil
}

// DetailNotice reports how many detail rows the document shows
func DetailNotice(shown, total int) string {
	return fmt.Sprintf("%d dari %d data ditampilkan", shown, total)
}

func headerSection(data *domain.ReportData, opts Options) *Header {
	h := &Header{Title: opts.Title}
	if opts.Organization != "" {
		h.Subtitle = append(h.Subtitle, opts.Organization)
	}
	h.Subtitle = append(h.Subtitle, fmt.Sprintf("Periode: %s (%s - %s)",
		PeriodLabel(data.Period), FormatDate(data.Window.Start), FormatDate(data.Window.End)))
	if data.ID != "" {
		h.Subtitle = append(h.Subtitle, "ID Laporan: "+data.ID)
	}
	return h
}

func formatChange(v float64, placeholder bool) string {
	s := fmt.Sprintf("%+.0f%%", v)
	if placeholder {
		s += "*"
	}
	return s
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func kpiTable(k domain.KPISnapshot) *Table {
	return &Table{
		ID:    SectionKPI,
		Title: "Ringkasan Kinerja",
		Columns: []Column{
			{Header: "Indikator", Width: 90, MaxChars: 48},
			{Header: "Nilai", Width: 45, MaxChars: 20, Align: draw.AlignRight},
			{Header: "Perubahan", Width: 35, MaxChars: 12, Align: draw.AlignRight},
		},
		Rows: [][]string{
			{"Total Keluhan", fmt.Sprintf("%d", k.Total), formatChange(k.TotalChangePercent, k.ChangeIsPlaceholder)},
			{"Keluhan Selesai", fmt.Sprintf("%d", k.Resolved), formatChange(k.ResolvedChangePercent, k.ChangeIsPlaceholder)},
			{"Rata-rata Waktu Respon", fmt.Sprintf("%d menit", k.AverageResponseMinutes), formatChange(k.ResponseChangePercent, k.ChangeIsPlaceholder)},
			{"Proyeksi Periode Berikutnya", fmt.Sprintf("%d", k.ProjectedNextPeriod), "-"},
		},
	}
}

func statusPie(entries []domain.DistributionEntry) *PieChart {
	p := &PieChart{ID: SectionStatusChart, Title: "Distribusi Status"}
	for i, e := range entries {
		p.Slices = append(p.Slices, PieSlice{
			Label:      StatusLabel(domain.TicketStatus(e.Label)),
			Count:      e.Count,
			Percentage: e.Percentage,
			Color:      draw.PaletteColor(i),
		})
	}
	return p
}

func unitBars(entries []domain.DistributionEntry) *BarChart {
	if len(entries) > analytics.TopUnitsChart {
		entries = entries[:analytics.TopUnitsChart]
	}
	b := &BarChart{ID: SectionUnitChart, Title: fmt.Sprintf("Keluhan per Unit (Top %d)", analytics.TopUnitsChart)}
	for i, e := range entries {
		b.Max = max(b.Max, e.Count)
		b.Bars = append(b.Bars, Bar{Label: e.Label, Value: e.Count, Color: draw.PaletteColor(i)})
	}
	return b
}

func statusTable(entries []domain.DistributionEntry) *Table {
	t := &Table{
		ID:    SectionStatusTable,
		Title: "Ringkasan Status",
		Columns: []Column{
			{Header: "Status", Width: 90, MaxChars: 40},
			{Header: "Jumlah", Width: 40, MaxChars: 10, Align: draw.AlignRight},
			{Header: "Persentase", Width: 40, MaxChars: 10, Align: draw.AlignRight},
		},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			StatusLabel(domain.TicketStatus(e.Label)),
			fmt.Sprintf("%d", e.Count),
			formatPercent(e.Percentage),
		})
	}
	return t
}

func trendLine(buckets []domain.TrendBucket) *LineChart {
	l := &LineChart{ID: SectionTrendChart, Title: "Tren 4 Minggu Terakhir"}
	total := Series{Name: "Total Keluhan", Color: draw.Primary}
	resolved := Series{Name: "Selesai", Color: draw.Success}
	for _, b := range buckets {
		l.Labels = append(l.Labels, b.Label)
		total.Values = append(total.Values, b.Count)
		resolved.Values = append(resolved.Values, b.Resolved)
	}
	l.Series = []Series{total, resolved}
	return l
}

func distributionTable(id, title, keyHeader string, entries []domain.DistributionEntry) *Table {
	t := &Table{
		ID:    id,
		Title: title,
		Columns: []Column{
			{Header: "No", Width: 12, MaxChars: 4, Align: draw.AlignCenter},
			{Header: keyHeader, Width: 88, MaxChars: 45},
			{Header: "Jumlah", Width: 35, MaxChars: 10, Align: draw.AlignRight},
			{Header: "Persentase", Width: 35, MaxChars: 10, Align: draw.AlignRight},
		},
	}
	for i, e := range entries {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Label,
			fmt.Sprintf("%d", e.Count),
			formatPercent(e.Percentage),
		})
	}
	return t
}

// DetailColumns are the fixed columns of the detail table
var DetailColumns = []Column{
	{Header: "No. Tiket", Width: 24, MaxChars: 14},
	{Header: "Judul", Width: 50, MaxChars: 30},
	{Header: "Unit", Width: 30, MaxChars: 17},
	{Header: "Status", Width: 20, MaxChars: 10},
	{Header: "Prioritas", Width: 20, MaxChars: 10},
	{Header: "Tanggal", Width: 26, MaxChars: 12},
}

func detailTable(rows []domain.DetailRow) *Table {
	t := &Table{ID: SectionDetail, Title: "Detail Keluhan", Columns: DetailColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.TicketNumber,
			r.Title,
			r.UnitName,
			StatusLabel(r.Status),
			PriorityLabel(r.Priority),
			FormatShortDate(r.CreatedAt),
		})
	}
	return t
}
