// Package draw is a small vector drawing vocabulary shared by every document
// backend. Coordinates are millimetres from the top-left corner of a page.
package draw

import "fmt"

// Color is an opaque RGB colour
type Color struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	Black     = Color{0x1f, 0x29, 0x37}
	Gray      = Color{0x6b, 0x72, 0x80}
	LightGray = Color{0xe5, 0xe7, 0xeb}
	White     = Color{0xff, 0xff, 0xff}
	Primary   = Color{0x25, 0x63, 0xeb}
	Success   = Color{0x16, 0xa3, 0x4a}
)

// Palette is the fixed chart palette. Entries are picked by position.
var Palette = []Color{
	{0x3b, 0x82, 0xf6},
	{0x10, 0xb9, 0x81},
	{0xf5, 0x9e, 0x0b},
	{0xef, 0x44, 0x44},
	{0x8b, 0x5c, 0xf6},
	{0xec, 0x48, 0x99},
	{0x14, 0xb8, 0xa6},
	{0xf9, 0x73, 0x16},
}

// PaletteColor returns the palette entry for position i, wrapping around
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Align is the horizontal anchor of a text run relative to its X coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op is one drawing primitive
type Op interface {
	op()
}

// Circle is a filled circle centred on X, Y
type Circle struct {
	X, Y, R float64
	Fill    Color
}

// Rect is a filled rectangle with its top-left corner at X, Y
type Rect struct {
	X, Y, W, H float64
	Fill       Color
}

// Segment is a straight stroked line
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Stroke         Color
}

// Text is a single line of text. Y is the baseline; Size is in points.
type Text struct {
	X, Y  float64
	Size  float64
	Bold  bool
	Align Align
	Color Color
	Value string
}

func (Circle) op()  {}
func (Rect) op()    {}
func (Segment) op() {}
func (Text) op()    {}

// Canvas records primitives in drawing order
type Canvas struct {
	ops []Op
}

func (c *Canvas) FillCircle(x, y, r float64, fill Color) {
	c.ops = append(c.ops, Circle{X: x, Y: y, R: r, Fill: fill})
}

func (c *Canvas) FillRect(x, y, w, h float64, fill Color) {
	c.ops = append(c.ops, Rect{X: x, Y: y, W: w, H: h, Fill: fill})
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, stroke Color) {
	c.ops = append(c.ops, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Stroke: stroke})
}

func (c *Canvas) Text(t Text) {
	c.ops = append(c.ops, t)
}

// Ops returns the recorded primitives. The slice must not be modified.
func (c *Canvas) Ops() []Op {
	return c.ops
}

// Len returns the number of recorded primitives
func (c *Canvas) Len() int {
	return len(c.ops)
}

// PointsToMM converts a font size in points to millimetres
func PointsToMM(pt float64) float64 {
	return pt * 25.4 / 72
}
