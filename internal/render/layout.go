// Package render lays report sections out on fixed-size pages and turns the
// analytics bundle into a paginated document of vector primitives.
package render

import (
	"fmt"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// Layout describes page geometry in millimetres
type Layout struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// A4 returns a portrait A4 layout with 20mm margins
func A4() Layout {
	return Layout{
		PageWidth:    210,
		PageHeight:   297,
		MarginTop:    20,
		MarginBottom: 20,
		MarginLeft:   20,
		MarginRight:  20,
	}
}

// Top is the first usable Y coordinate
func (l Layout) Top() float64 { return l.MarginTop }

// Bottom is the last usable Y coordinate
func (l Layout) Bottom() float64 { return l.PageHeight - l.MarginBottom }

// UsableHeight is the vertical space available to sections on a fresh page
func (l Layout) UsableHeight() float64 { return l.Bottom() - l.Top() }

// ContentWidth is the horizontal space between the side margins
func (l Layout) ContentWidth() float64 { return l.PageWidth - l.MarginLeft - l.MarginRight }

// Section is one drawable unit. Height must not depend on where the
// section ends up being drawn.
type Section interface {
	Name() string
	Height(width float64) float64
	Draw(c *draw.Canvas, x, y, width float64)
}

// RenderOverflowError is returned when a section cannot fit even on an
// empty page
type RenderOverflowError struct {
	Section string
	Height  float64
	Usable  float64
}

func (e *RenderOverflowError) Error() string {
	return fmt.Sprintf("section %q needs %.1fmm but a page only has %.1fmm", e.Section, e.Height, e.Usable)
}

// Page is one composed page
type Page struct {
	Index  int
	Canvas draw.Canvas
}

// Placement records where a section was drawn
type Placement struct {
	Section string
	Page    int
	Top     float64
	Bottom  float64
}

// Document places sections sequentially, breaking to a new page whenever
// the next section would cross the bottom margin. The cursor only moves
// down within a page.
type Document struct {
	layout     Layout
	pages      []*Page
	cursor     float64
	placements []Placement
	stamped    bool

	title       string
	generatedAt time.Time
}

// NewDocument starts a document with one empty page
func NewDocument(layout Layout) *Document {
	d := &Document{layout: layout}
	d.newPage()
	return d
}

func (d *Document) newPage() {
	d.pages = append(d.pages, &Page{Index: len(d.pages)})
	d.cursor = d.layout.Top()
}

// Layout returns the page geometry
func (d *Document) Layout() Layout { return d.layout }

// Pages returns the composed pages in order
func (d *Document) Pages() []*Page { return d.pages }

// PageCount returns the number of pages
func (d *Document) PageCount() int { return len(d.pages) }

// Placements returns every placed section in placement order
func (d *Document) Placements() []Placement { return d.placements }

// SetTitle sets the document title carried into backend metadata
func (d *Document) SetTitle(title string) { d.title = title }

func (d *Document) Title() string { return d.title }

// GeneratedAt is the timestamp stamped into the footers
func (d *Document) GeneratedAt() time.Time { return d.generatedAt }

// Cursor returns the current vertical offset on the last page
func (d *Document) Cursor() float64 { return d.cursor }

// Remaining returns the space left below the cursor on the current page
func (d *Document) Remaining() float64 { return d.layout.Bottom() - d.cursor }

// Place measures s and draws it at the cursor, starting a new page first
// when it does not fit in the remaining space.
func (d *Document) Place(s Section) error {
	width := d.layout.ContentWidth()
	h := s.Height(width)
	if h > d.layout.UsableHeight() {
		return &RenderOverflowError{Section: s.Name(), Height: h, Usable: d.layout.UsableHeight()}
	}
	if d.cursor+h > d.layout.Bottom() {
		d.newPage()
	}

	page := d.pages[len(d.pages)-1]
	s.Draw(&page.Canvas, d.layout.MarginLeft, d.cursor, width)
	d.placements = append(d.placements, Placement{
		Section: s.Name(),
		Page:    page.Index,
		Top:     d.cursor,
		Bottom:  d.cursor + h,
	})
	d.cursor += h
	return nil
}

// StampFooters draws the page footer on every page. It runs once, after all
// sections are placed, because the footer needs the final page count.
func (d *Document) StampFooters(generatedAt time.Time) {
	if d.stamped {
		return
	}
	d.stamped = true
	d.generatedAt = generatedAt

	total := len(d.pages)
	l := d.layout
	lineY := l.Bottom() + 4
	textY := lineY + 5
	for _, p := range d.pages {
		p.Canvas.Line(l.MarginLeft, lineY, l.PageWidth-l.MarginRight, lineY, 0.2, draw.LightGray)
		p.Canvas.Text(draw.Text{
			X:     l.MarginLeft,
			Y:     textY,
			Size:  8,
			Color: draw.Gray,
			Value: "Dibuat: " + FormatDateTime(generatedAt),
		})
		p.Canvas.Text(draw.Text{
			X:     l.PageWidth - l.MarginRight,
			Y:     textY,
			Size:  8,
			Align: draw.AlignRight,
			Color: draw.Gray,
			Value: PageLabel(p.Index+1, total),
		})
	}
}
