package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

func TestCornerSquareDrawer_Dot(t *testing.T) {
	d := CornerSquareDrawer{Type: style.CornerSquareDot}
	p, ok := d.Draw(0, 0, 70, 0).(Ring)
	require.True(t, ok)

	assert.InDelta(t, 35, p.CX, 1e-9)
	assert.InDelta(t, 35, p.CY, 1e-9)
	assert.InDelta(t, 35, p.Outer, 1e-9)
	// The ring is exactly one module thick.
	assert.InDelta(t, 25, p.Inner, 1e-9)
}

func TestCornerSquareDrawer_Frame(t *testing.T) {
	d := CornerSquareDrawer{Type: style.CornerSquarePlain}
	p, ok := d.Draw(10, 10, 70, math.Pi/2).(*Path)
	require.True(t, ok)

	assert.Equal(t, FillEvenOdd, p.Rule)
	assert.InDelta(t, math.Pi/2, p.Rotation, 1e-9)
	assert.Equal(t, Point{45, 45}, p.Pivot)

	// Two closed subpaths: the outer square and the carved hole.
	moves, closes := 0, 0
	for _, s := range p.Segments {
		switch s.Op {
		case OpMove:
			moves++
		case OpClose:
			closes++
		}
	}
	assert.Equal(t, 2, moves)
	assert.Equal(t, 2, closes)

	// Inner outline sits one module in.
	b := p.Bounds()
	assert.InDelta(t, 10, b.X, 1e-9)
	assert.InDelta(t, 10, b.Y, 1e-9)
	assert.InDelta(t, 70, b.W, 1e-9)
	assert.InDelta(t, 70, b.H, 1e-9)
}

func TestCornerSquareDrawer_ExtraRounded(t *testing.T) {
	d := CornerSquareDrawer{Type: style.CornerSquareExtraRounded}
	p, ok := d.Draw(0, 0, 70, 0).(*Path)
	require.True(t, ok)
	assert.Equal(t, FillEvenOdd, p.Rule)

	var radii []float64
	for _, s := range p.Segments {
		if s.Op == OpArc {
			radii = append(radii, s.Radius)
		}
	}
	require.Len(t, radii, 8)
	// Outer corners use 2.5 modules, inner corners 1.5.
	assert.InDelta(t, 25, radii[0], 1e-9)
	assert.InDelta(t, 15, radii[len(radii)-1], 1e-9)
}

func TestCornerDotDrawer(t *testing.T) {
	circle := CornerDotDrawer{Type: style.CornerDotDot}.Draw(10, 20, 30, 0)
	assert.Equal(t, Circle{CX: 25, CY: 35, R: 15}, circle)

	square := CornerDotDrawer{Type: style.CornerDotSquare}.Draw(10, 20, 30, 0)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 30, H: 30}, square)
}
