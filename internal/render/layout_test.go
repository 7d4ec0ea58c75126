package render

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_A4(t *testing.T) {
	l := A4()
	assert.Equal(t, 257.0, l.UsableHeight())
	assert.Equal(t, 170.0, l.ContentWidth())
	assert.Equal(t, 277.0, l.Bottom())
}

func TestDocument_PageBreaks(t *testing.T) {
	doc := NewDocument(squareLayout())
	require.Equal(t, 100.0, doc.Layout().UsableHeight())

	for i := 0; i < 9; i++ {
		require.NoError(t, doc.Place(block{name: fmt.Sprintf("s%d", i), h: 40}))
	}

	placements := doc.Placements()
	require.Len(t, placements, 9)
	assert.Equal(t, 0, placements[0].Page)
	assert.Equal(t, 0, placements[1].Page)
	assert.Equal(t, 1, placements[2].Page, "third section starts a new page")
	assert.Equal(t, 10.0, placements[2].Top)
	assert.Equal(t, 5, doc.PageCount())
}

func TestDocument_ExactFit(t *testing.T) {
	doc := NewDocument(squareLayout())
	require.NoError(t, doc.Place(block{name: "a", h: 60}))
	require.NoError(t, doc.Place(block{name: "b", h: 40}))

	assert.Equal(t, 1, doc.PageCount())
	assert.Equal(t, 0.0, doc.Remaining())
}

func TestDocument_Overflow(t *testing.T) {
	doc := NewDocument(squareLayout())
	require.NoError(t, doc.Place(block{name: "small", h: 10}))

	err := doc.Place(block{name: "huge", h: 100.5})

	var overflow *RenderOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, "huge", overflow.Section)
	assert.Equal(t, 100.5, overflow.Height)
	assert.Equal(t, 100.0, overflow.Usable)
	assert.Equal(t, 1, doc.PageCount(), "no page is emitted for a section that cannot fit")
	assert.Len(t, doc.Placements(), 1)
}

func TestDocument_NeverCrossesBottomAndUsesMinimalPages(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	layout := squareLayout()

	for run := 0; run < 200; run++ {
		doc := NewDocument(layout)
		n := 1 + rng.Intn(30)
		for i := 0; i < n; i++ {
			h := float64(1 + rng.Intn(100))
			require.NoError(t, doc.Place(block{name: fmt.Sprintf("s%d", i), h: h}))
		}

		placements := doc.Placements()
		cursorAtEnd := map[int]float64{}
		for i, p := range placements {
			assert.LessOrEqual(t, p.Bottom, layout.Bottom())
			assert.GreaterOrEqual(t, p.Top, layout.Top())
			if i > 0 {
				prev := placements[i-1]
				if p.Page == prev.Page {
					assert.Equal(t, prev.Bottom, p.Top, "cursor advances by the measured height")
				} else {
					assert.Equal(t, prev.Page+1, p.Page)
					assert.Greater(t, prev.Bottom+(p.Bottom-p.Top), layout.Bottom(), "page break only when the section does not fit")
				}
			}
			cursorAtEnd[p.Page] = p.Bottom
		}
		assert.Equal(t, len(cursorAtEnd), doc.PageCount())
	}
}

func TestDocument_StampFooters(t *testing.T) {
	doc := NewDocument(squareLayout())
	for i := 0; i < 5; i++ {
		require.NoError(t, doc.Place(block{name: "s", h: 40}))
	}
	before := make([]int, doc.PageCount())
	for i, p := range doc.Pages() {
		before[i] = p.Canvas.Len()
	}

	generated := time.Date(2026, 10, 15, 14, 5, 0, 0, time.UTC)
	doc.StampFooters(generated)
	doc.StampFooters(generated)

	require.Equal(t, 3, doc.PageCount())
	for i, p := range doc.Pages() {
		assert.Equal(t, before[i]+3, p.Canvas.Len(), "footer is stamped exactly once")
		values := textValues(&p.Canvas)
		assert.Contains(t, values, fmt.Sprintf("Halaman %d dari 3", i+1))
		assert.Contains(t, values, "Dibuat: 15 Okt 2026 14:05")
	}
	assert.True(t, doc.GeneratedAt().Equal(generated))
}
