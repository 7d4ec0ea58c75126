package render

import (
	"fmt"
	"math"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// Chart geometry in millimetres
const (
	ChartTitleHeight = 9
	ChartGap         = 8

	PieRadius     = 22
	PieDotRadius  = 3
	pieRingWidth  = 2.5
	pieLegendRow  = 6
	pieLegendGapX = 12

	BarRowHeight   = 8
	BarThickness   = 5
	BarLabelWidth  = 48
	BarValueWidth  = 16
	barValueOffset = 2

	LinePlotHeight   = 55
	lineAxisHeight   = 8
	lineLegendHeight = 8
	lineYAxisWidth   = 12
	linePointRadius  = 1.2
)

// Point is a position on the page
type Point struct {
	X, Y float64
}

func drawTitle(c *draw.Canvas, x, y float64, title string) {
	c.Text(draw.Text{X: x, Y: y + 6, Size: 11, Bold: true, Color: draw.Black, Value: title})
}

// PieSlice is one pie category. Percentage is displayed as given.
type PieSlice struct {
	Label      string
	Count      int
	Percentage float64
	Color      draw.Color
}

// PieChart draws each category as a dot on a ring at the midpoint of its
// cumulative share, next to a legend listing every category and the total.
type PieChart struct {
	ID     string
	Title  string
	Slices []PieSlice
}

func (p *PieChart) Name() string { return p.ID }

func (p *PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Count
	}
	return total
}

func (p *PieChart) legendRows() int {
	return len(p.Slices) + 1
}

func (p *PieChart) Height(float64) float64 {
	body := math.Max(2*PieRadius+2*PieDotRadius, float64(p.legendRows())*pieLegendRow)
	return ChartTitleHeight + body + ChartGap
}

// Center returns the ring centre for a chart drawn at x, y
func (p *PieChart) Center(x, y float64) Point {
	return Point{X: x + PieRadius + PieDotRadius, Y: y + ChartTitleHeight + PieRadius + PieDotRadius}
}

// DotPositions returns the dot centre of every slice. The angle of slice i
// is its cumulative share plus half its own share, clockwise from 12 o'clock.
func (p *PieChart) DotPositions(center Point) []Point {
	total := p.Total()
	points := make([]Point, len(p.Slices))
	if total == 0 {
		return points
	}
	cumulative := 0.0
	for i, s := range p.Slices {
		share := float64(s.Count) / float64(total)
		angle := 2*math.Pi*(cumulative+share/2) - math.Pi/2
		points[i] = Point{
			X: center.X + PieRadius*math.Cos(angle),
			Y: center.Y + PieRadius*math.Sin(angle),
		}
		cumulative += share
	}
	return points
}

// LegendLines returns the legend text in drawing order, total last
func (p *PieChart) LegendLines() []string {
	lines := make([]string, 0, p.legendRows())
	for _, s := range p.Slices {
		lines = append(lines, fmt.Sprintf("%s: %d (%.1f%%)", s.Label, s.Count, s.Percentage))
	}
	return append(lines, fmt.Sprintf("Total: %d", p.Total()))
}

func (p *PieChart) Draw(c *draw.Canvas, x, y, _ float64) {
	drawTitle(c, x, y, p.Title)

	center := p.Center(x, y)
	c.FillCircle(center.X, center.Y, PieRadius+pieRingWidth/2, draw.LightGray)
	c.FillCircle(center.X, center.Y, PieRadius-pieRingWidth/2, draw.White)
	for i, pt := range p.DotPositions(center) {
		if p.Slices[i].Count == 0 {
			continue
		}
		c.FillCircle(pt.X, pt.Y, PieDotRadius, p.Slices[i].Color)
	}

	legendX := x + 2*(PieRadius+PieDotRadius) + pieLegendGapX
	ly := y + ChartTitleHeight
	for i, line := range p.LegendLines() {
		if i < len(p.Slices) {
			c.FillRect(legendX, ly+1, 4, 4, p.Slices[i].Color)
			c.Text(draw.Text{X: legendX + 6, Y: ly + 4.5, Size: 9, Color: draw.Black, Value: line})
		} else {
			c.Text(draw.Text{X: legendX, Y: ly + 4.5, Size: 9, Bold: true, Color: draw.Black, Value: line})
		}
		ly += pieLegendRow
	}
}

// Bar is one horizontal bar
type Bar struct {
	Label string
	Value int
	Color draw.Color
}

// BarChart draws horizontal bars against a shared maximum. Each row draws
// its full-width track first, then the bar, then the value label.
type BarChart struct {
	ID    string
	Title string
	Bars  []Bar
	Max   int
}

func (b *BarChart) Name() string { return b.ID }

func (b *BarChart) Height(float64) float64 {
	rows := max(len(b.Bars), 1)
	return ChartTitleHeight + float64(rows)*BarRowHeight + ChartGap
}

// MaxBarWidth is the track length for a chart drawn at width
func MaxBarWidth(width float64) float64 {
	return width - BarLabelWidth - BarValueWidth
}

// BarWidth scales value against maxValue. A zero maximum yields zero width.
func BarWidth(value, maxValue int, maxBarWidth float64) float64 {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return float64(value) / float64(maxValue) * maxBarWidth
}

func (b *BarChart) Draw(c *draw.Canvas, x, y, width float64) {
	drawTitle(c, x, y, b.Title)
	y += ChartTitleHeight

	if len(b.Bars) == 0 {
		c.Text(draw.Text{X: x, Y: y + 5, Size: 9, Color: draw.Gray, Value: EmptyTableText})
		return
	}

	track := MaxBarWidth(width)
	barX := x + BarLabelWidth
	for _, bar := range b.Bars {
		top := y + (BarRowHeight-BarThickness)/2
		c.Text(draw.Text{X: x, Y: top + BarThickness*0.8, Size: 9, Color: draw.Black, Value: Truncate(bar.Label, 26)})
		c.FillRect(barX, top, track, BarThickness, draw.LightGray)
		w := BarWidth(bar.Value, b.Max, track)
		c.FillRect(barX, top, w, BarThickness, bar.Color)
		c.Text(draw.Text{
			X:     barX + w + barValueOffset,
			Y:     top + BarThickness*0.8,
			Size:  9,
			Bold:  true,
			Color: draw.Black,
			Value: fmt.Sprintf("%d", bar.Value),
		})
		y += BarRowHeight
	}
}

// Series is one plotted line
type Series struct {
	Name   string
	Values []int
	Color  draw.Color
}

// LineChart plots every series against one vertical scale derived from the
// largest value of any series.
type LineChart struct {
	ID     string
	Title  string
	Labels []string
	Series []Series
}

func (l *LineChart) Name() string { return l.ID }

func (l *LineChart) Height(float64) float64 {
	return ChartTitleHeight + LinePlotHeight + lineAxisHeight + lineLegendHeight + ChartGap
}

// Scale returns the shared maximum across series, or 1 when every value is 0
func (l *LineChart) Scale() int {
	m := 0
	for _, s := range l.Series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

// PlotArea returns the top-left corner and size of the plot for a chart
// drawn at x, y with the given width
func (l *LineChart) PlotArea(x, y, width float64) (Point, float64, float64) {
	return Point{X: x + lineYAxisWidth, Y: y + ChartTitleHeight}, width - lineYAxisWidth - 4, LinePlotHeight
}

// Points returns the plotted positions of series s
func (l *LineChart) Points(s Series, origin Point, w, h float64) []Point {
	scale := float64(l.Scale())
	n := len(l.Labels)
	points := make([]Point, 0, len(s.Values))
	for i, v := range s.Values {
		px := origin.X + w/2
		if n > 1 {
			px = origin.X + float64(i)*w/float64(n-1)
		}
		points = append(points, Point{X: px, Y: origin.Y + h - float64(v)/scale*h})
	}
	return points
}

func (l *LineChart) Draw(c *draw.Canvas, x, y, width float64) {
	drawTitle(c, x, y, l.Title)

	origin, w, h := l.PlotArea(x, y, width)
	bottom := origin.Y + h

	for _, frac := range []float64{0, 0.5, 1} {
		gy := bottom - frac*h
		c.Line(origin.X, gy, origin.X+w, gy, 0.2, draw.LightGray)
		c.Text(draw.Text{
			X:     origin.X - 2,
			Y:     gy + 1,
			Size:  7,
			Align: draw.AlignRight,
			Color: draw.Gray,
			Value: fmt.Sprintf("%d", int(math.Round(frac*float64(l.Scale())))),
		})
	}

	n := len(l.Labels)
	for i, label := range l.Labels {
		lx := origin.X + w/2
		if n > 1 {
			lx = origin.X + float64(i)*w/float64(n-1)
		}
		c.Text(draw.Text{X: lx, Y: bottom + 5, Size: 8, Align: draw.AlignCenter, Color: draw.Gray, Value: label})
	}

	for _, s := range l.Series {
		pts := l.Points(s, origin, w, h)
		for i := 1; i < len(pts); i++ {
			c.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 0.6, s.Color)
		}
		for _, p := range pts {
			c.FillCircle(p.X, p.Y, linePointRadius, s.Color)
		}
	}

	ly := bottom + lineAxisHeight
	lx := origin.X
	for _, s := range l.Series {
		c.FillRect(lx, ly+1, 4, 4, s.Color)
		c.Text(draw.Text{X: lx + 6, Y: ly + 4.5, Size: 8, Color: draw.Black, Value: s.Name})
		lx += 45
	}
}
