package render

import (
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render/draw"
)

// block is a section with a fixed height that draws a single rectangle
type block struct {
	name string
	h    float64
}

func (b block) Name() string           { return b.name }
func (b block) Height(float64) float64 { return b.h }
func (b block) Draw(c *draw.Canvas, x, y, w float64) {
	c.FillRect(x, y, w, b.h, draw.LightGray)
}

// squareLayout has a usable height of exactly 100
func squareLayout() Layout {
	return Layout{PageWidth: 100, PageHeight: 120, MarginTop: 10, MarginBottom: 10, MarginLeft: 5, MarginRight: 5}
}

func texts(c *draw.Canvas) []draw.Text {
	var out []draw.Text
	for _, op := range c.Ops() {
		if t, ok := op.(draw.Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func textValues(c *draw.Canvas) []string {
	var out []string
	for _, t := range texts(c) {
		out = append(out, t.Value)
	}
	return out
}
