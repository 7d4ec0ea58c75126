package render

import (
	"math"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// Table geometry in millimetres
const (
	TableTitleHeight  = 9
	TableHeaderHeight = 8
	TableRowHeight    = 7
	TableGap          = 6
	tableFontSize     = 8.5
	cellPadding       = 2
)

// EmptyTableText fills tables that have no rows
const EmptyTableText = "Tidak ada data"

// Column is a fixed-width table column. Cell text longer than MaxChars is
// truncated with an ellipsis so every row keeps the same height.
type Column struct {
	Header   string
	Width    float64
	MaxChars int
	Align    draw.Align
}

// Table is a titled grid of text cells
type Table struct {
	ID      string
	Title   string
	Columns []Column
	Rows    [][]string
}

// tableBlock is a run of consecutive table rows drawn as one section. The
// header row repeats on every block; the title only on the first.
type tableBlock struct {
	table     *Table
	rows      [][]string
	withTitle bool
	empty     bool
}

func blockHeight(rows int, withTitle bool) float64 {
	h := TableHeaderHeight + float64(rows)*TableRowHeight + TableGap
	if withTitle {
		h += TableTitleHeight
	}
	return h
}

func (b *tableBlock) Name() string { return b.table.ID }

func (b *tableBlock) Height(float64) float64 {
	n := len(b.rows)
	if b.empty {
		n = 1
	}
	return blockHeight(n, b.withTitle)
}

func (b *tableBlock) Draw(c *draw.Canvas, x, y, width float64) {
	if b.withTitle {
		c.Text(draw.Text{X: x, Y: y + 6, Size: 11, Bold: true, Color: draw.Black, Value: b.table.Title})
		y += TableTitleHeight
	}

	tableWidth := 0.0
	for _, col := range b.table.Columns {
		tableWidth += col.Width
	}
	tableWidth = math.Min(tableWidth, width)

	c.FillRect(x, y, tableWidth, TableHeaderHeight, draw.Primary)
	cx := x
	for _, col := range b.table.Columns {
		c.Text(cellText(cx, y, TableHeaderHeight, col, Truncate(col.Header, col.MaxChars), true, draw.White))
		cx += col.Width
	}
	y += TableHeaderHeight

	if b.empty {
		c.Text(draw.Text{X: x + cellPadding, Y: y + 5, Size: tableFontSize, Color: draw.Gray, Value: EmptyTableText})
		y += TableRowHeight
		c.Line(x, y, x+tableWidth, y, 0.2, draw.LightGray)
		return
	}

	for _, row := range b.rows {
		cx = x
		for i, col := range b.table.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			c.Text(cellText(cx, y, TableRowHeight, col, Truncate(value, col.MaxChars), false, draw.Black))
			cx += col.Width
		}
		y += TableRowHeight
		c.Line(x, y, x+tableWidth, y, 0.2, draw.LightGray)
	}
}

func cellText(x, y, h float64, col Column, value string, bold bool, color draw.Color) draw.Text {
	t := draw.Text{Y: y + h*0.68, Size: tableFontSize, Bold: bold, Align: col.Align, Color: color, Value: value}
	switch col.Align {
	case draw.AlignRight:
		t.X = x + col.Width - cellPadding
	case draw.AlignCenter:
		t.X = x + col.Width/2
	default:
		t.X = x + cellPadding
	}
	return t
}

// PlaceTable splits t into row blocks that fill the remaining space of each
// page and places them in order.
func PlaceTable(doc *Document, t *Table) error {
	if len(t.Rows) == 0 {
		return doc.Place(&tableBlock{table: t, withTitle: true, empty: true})
	}

	rows := t.Rows
	first := true
	for len(rows) > 0 {
		fit := rowsThatFit(doc.Remaining(), first)
		if fit < 1 {
			fit = max(rowsThatFit(doc.Layout().UsableHeight(), first), 1)
		}
		n := min(fit, len(rows))
		if err := doc.Place(&tableBlock{table: t, rows: rows[:n], withTitle: first}); err != nil {
			return err
		}
		rows = rows[n:]
		first = false
	}
	return nil
}

func rowsThatFit(space float64, withTitle bool) int {
	free := space - blockHeight(0, withTitle)
	if free < TableRowHeight {
		return 0
	}
	return int(math.Floor(free / TableRowHeight))
}
