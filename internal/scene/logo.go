package scene

import (
	"math"

	"github.com/MeKo-Tech/qrstyle/internal/geom"
	"github.com/MeKo-Tech/qrstyle/internal/matrix"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// reservation is the centered square exclusion region for the logo, in
// module coordinates. side already includes the configured extra margin.
type reservation struct {
	center float64
	side   float64
}

// computeReservation derives the exclusion square from the image options:
// side = size_ratio x (N - 2 x margin-in-modules), expanded by the module
// margin on each side.
func computeReservation(count int, marginModules int, opts style.ImageOptions) reservation {
	side := opts.SizeRatio*float64(count-2*marginModules) + 2*float64(opts.MarginModules)
	return reservation{
		center: float64(count) / 2,
		side:   side,
	}
}

// contains reports whether the center of module (row, col) falls inside
// the exclusion square.
func (r reservation) contains(row, col int) bool {
	cx := float64(col) + 0.5
	cy := float64(row) + 0.5
	half := r.side / 2
	return math.Abs(cx-r.center) <= half && math.Abs(cy-r.center) <= half
}

// reserve reclassifies data modules under the exclusion region as hidden.
// Finder and separator roles are never touched regardless of overlap;
// that invariant lives in Matrix.Hide.
func reserve(m *matrix.Matrix, r reservation) {
	n := m.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.contains(row, col) {
				m.Hide(row, col)
			}
		}
	}
}

// logoBox computes the pixel rectangle the encoders draw the logo into.
// The box keeps the logo's aspect ratio inside the exclusion square,
// using odd module counts so the logo stays centered on the grid, and is
// capped by what the error correction level can recover.
func logoBox(l layout, r reservation, aspect float64, level style.ECLevel) geom.Rect {
	maxHidden := int(level.Percentage() * float64(l.count*l.count))
	maxAxis := int(r.side)
	if maxAxis > l.count-14 {
		maxAxis = l.count - 14
	}
	if maxAxis < 1 {
		maxAxis = 1
	}
	w, h := hiddenDots(aspect, maxHidden, maxAxis)

	width := float64(w) * l.dotSize
	height := float64(h) * l.dotSize
	gridSize := float64(l.count) * l.dotSize
	x := l.xBegin + l.round((gridSize-width)/2)
	y := l.yBegin + l.round((gridSize-height)/2)
	return geom.Rect{X: x, Y: y, W: width, H: height}
}

// hiddenDots computes how many modules the logo may cover on each axis,
// preserving the aspect ratio k = height/width. Counts are odd so the
// box centers on the middle module.
func hiddenDots(k float64, maxHidden, maxAxis int) (xDots, yDots int) {
	if k <= 0 {
		k = 1
	}
	xDots = int(math.Floor(math.Sqrt(float64(maxHidden) / k)))
	if xDots < 1 {
		xDots = 1
	}
	if xDots%2 == 0 {
		xDots--
	}
	if xDots > maxAxis {
		xDots = maxAxis
	}
	yDots = 1 + 2*int(math.Ceil((float64(xDots)*k-1)/2))
	for yDots*xDots > maxHidden && xDots > 3 {
		xDots -= 2
		yDots = 1 + 2*int(math.Ceil((float64(xDots)*k-1)/2))
	}
	if yDots > maxAxis {
		yDots = maxAxis
	}
	return xDots, yDots
}
