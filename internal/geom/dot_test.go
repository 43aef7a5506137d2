package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// neighborSet builds a NeighborFunc from the four orthogonal flags.
func neighborSet(left, right, top, bottom bool) NeighborFunc {
	return func(dx, dy int) bool {
		switch {
		case dx == -1 && dy == 0:
			return left
		case dx == 1 && dy == 0:
			return right
		case dx == 0 && dy == -1:
			return top
		case dx == 0 && dy == 1:
			return bottom
		}
		return false
	}
}

func TestDotDrawer_Square(t *testing.T) {
	d := DotDrawer{Type: style.DotSquare}
	p := d.Draw(10, 20, 8, nil)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 8, H: 8}, p)
}

func TestDotDrawer_Dots(t *testing.T) {
	d := DotDrawer{Type: style.DotDots}
	p := d.Draw(10, 20, 8, neighborSet(true, true, true, true))
	// Circle regardless of neighbors.
	assert.Equal(t, Circle{CX: 14, CY: 24, R: 4}, p)
}

func TestDotDrawer_Rounded(t *testing.T) {
	d := DotDrawer{Type: style.DotRounded}

	t.Run("isolated module is a circle", func(t *testing.T) {
		p := d.Draw(0, 0, 10, neighborSet(false, false, false, false))
		assert.Equal(t, Circle{CX: 5, CY: 5, R: 5}, p)
	})

	t.Run("nil neighbor func means isolated", func(t *testing.T) {
		p := d.Draw(0, 0, 10, nil)
		assert.Equal(t, Circle{CX: 5, CY: 5, R: 5}, p)
	})

	t.Run("opposite neighbors force a square", func(t *testing.T) {
		p := d.Draw(0, 0, 10, neighborSet(true, true, false, false))
		assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 10}, p)
		p = d.Draw(0, 0, 10, neighborSet(false, false, true, true))
		assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 10}, p)
	})

	t.Run("three neighbors force a square", func(t *testing.T) {
		p := d.Draw(0, 0, 10, neighborSet(true, true, true, false))
		assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 10}, p)
	})

	t.Run("two adjacent neighbors leave one rounded corner", func(t *testing.T) {
		tests := []struct {
			name     string
			n        NeighborFunc
			rotation float64
		}{
			{"left+top", neighborSet(true, false, true, false), math.Pi / 2},
			{"top+right", neighborSet(false, true, true, false), math.Pi},
			{"right+bottom", neighborSet(false, true, false, true), -math.Pi / 2},
			{"bottom+left", neighborSet(true, false, false, true), 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, ok := d.Draw(0, 0, 10, tt.n).(*Path)
				require.True(t, ok)
				assert.InDelta(t, tt.rotation, p.Rotation, 1e-9)
				assert.Equal(t, Point{5, 5}, p.Pivot)
			})
		}
	})

	t.Run("one neighbor leaves a rounded far side", func(t *testing.T) {
		tests := []struct {
			name     string
			n        NeighborFunc
			rotation float64
		}{
			{"left", neighborSet(true, false, false, false), 0},
			{"top", neighborSet(false, false, true, false), math.Pi / 2},
			{"right", neighborSet(false, true, false, false), math.Pi},
			{"bottom", neighborSet(false, false, false, true), -math.Pi / 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, ok := d.Draw(0, 0, 10, tt.n).(*Path)
				require.True(t, ok)
				assert.InDelta(t, tt.rotation, p.Rotation, 1e-9)
			})
		}
	})
}

func TestDotDrawer_ExtraRoundedUsesFullRadius(t *testing.T) {
	d := DotDrawer{Type: style.DotExtraRounded}
	p, ok := d.Draw(0, 0, 10, neighborSet(true, false, true, false)).(*Path)
	require.True(t, ok)

	var maxR float64
	for _, s := range p.Segments {
		if s.Op == OpArc && s.Radius > maxR {
			maxR = s.Radius
		}
	}
	assert.InDelta(t, 10, maxR, 1e-9)
}

func TestDotDrawer_Classy(t *testing.T) {
	d := DotDrawer{Type: style.DotClassy}

	t.Run("isolated module rounds two opposite corners", func(t *testing.T) {
		p, ok := d.Draw(0, 0, 10, neighborSet(false, false, false, false)).(*Path)
		require.True(t, ok)
		arcs := 0
		for _, s := range p.Segments {
			if s.Op == OpArc {
				arcs++
			}
		}
		assert.Equal(t, 2, arcs)
	})

	t.Run("free top-left pair rounds one corner", func(t *testing.T) {
		p, ok := d.Draw(0, 0, 10, neighborSet(false, true, false, true)).(*Path)
		require.True(t, ok)
		assert.InDelta(t, -math.Pi/2, p.Rotation, 1e-9)
	})

	t.Run("free bottom-right pair rounds one corner", func(t *testing.T) {
		p, ok := d.Draw(0, 0, 10, neighborSet(true, false, true, false)).(*Path)
		require.True(t, ok)
		assert.InDelta(t, math.Pi/2, p.Rotation, 1e-9)
	})

	t.Run("both pairs occupied gives a square", func(t *testing.T) {
		p := d.Draw(0, 0, 10, neighborSet(true, true, true, true))
		assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 10}, p)
	})
}
