package render

import (
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// Ellipsis marks truncated cell text
const Ellipsis = "..."

// Truncate shortens s to at most budget characters, ending with Ellipsis
// when anything was cut.
func Truncate(s string, budget int) string {
	runes := []rune(s)
	if budget <= 0 {
		return ""
	}
	if len(runes) <= budget {
		return s
	}
	if budget <= len(Ellipsis) {
		return string(runes[:budget])
	}
	return string(runes[:budget-len(Ellipsis)]) + Ellipsis
}

// lineHeight is the vertical advance of one line of text at size pt
func lineHeight(size float64) float64 {
	return draw.PointsToMM(size) * 1.5
}

// Line is one line of a paragraph
type Line struct {
	Text  string
	Size  float64
	Bold  bool
	Color draw.Color
}

// Paragraph is a block of pre-broken lines followed by a gap
type Paragraph struct {
	ID    string
	Lines []Line
	Gap   float64
}

func (p *Paragraph) Name() string { return p.ID }

func (p *Paragraph) Height(float64) float64 {
	h := p.Gap
	for _, l := range p.Lines {
		h += lineHeight(l.Size)
	}
	return h
}

func (p *Paragraph) Draw(c *draw.Canvas, x, y, _ float64) {
	for _, l := range p.Lines {
		lh := lineHeight(l.Size)
		c.Text(draw.Text{
			X:     x,
			Y:     y + lh*0.75,
			Size:  l.Size,
			Bold:  l.Bold,
			Color: l.Color,
			Value: l.Text,
		})
		y += lh
	}
}

// Header is the report title block with a rule underneath
type Header struct {
	Title    string
	Subtitle []string
}

const headerGap = 6

func (h *Header) Name() string { return "header" }

func (h *Header) paragraph() *Paragraph {
	p := &Paragraph{ID: "header"}
	p.Lines = append(p.Lines, Line{Text: h.Title, Size: 16, Bold: true, Color: draw.Black})
	for _, s := range h.Subtitle {
		p.Lines = append(p.Lines, Line{Text: s, Size: 10, Color: draw.Gray})
	}
	return p
}

func (h *Header) Height(width float64) float64 {
	return h.paragraph().Height(width) + headerGap
}

func (h *Header) Draw(c *draw.Canvas, x, y, width float64) {
	p := h.paragraph()
	p.Draw(c, x, y, width)
	ruleY := y + p.Height(width) + headerGap/2
	c.Line(x, ruleY, x+width, ruleY, 0.4, draw.Primary)
}
