package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteColor_Cycles(t *testing.T) {
	n := len(Palette)
	for i := 0; i < n*3; i++ {
		assert.Equal(t, Palette[i%n], PaletteColor(i))
	}
	assert.Equal(t, PaletteColor(2), PaletteColor(-2))
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#0a0b0c", Color{10, 11, 12}.Hex())
}

func TestCanvas_RecordsInOrder(t *testing.T) {
	var c Canvas
	c.FillRect(1, 2, 3, 4, Gray)
	c.FillCircle(5, 6, 1, Primary)
	c.Line(0, 0, 10, 10, 0.3, Black)
	c.Text(Text{X: 1, Y: 1, Size: 9, Value: "x"})

	require.Equal(t, 4, c.Len())
	assert.IsType(t, Rect{}, c.Ops()[0])
	assert.IsType(t, Circle{}, c.Ops()[1])
	assert.IsType(t, Segment{}, c.Ops()[2])
	assert.IsType(t, Text{}, c.Ops()[3])
}
