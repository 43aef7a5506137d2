package scene

import (
	"math"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// resolvePaint turns a region's configured color or gradient into a
// concrete paint descriptor for the box (x, y, w, h) in canvas pixels.
// additionalRotation reorients linear gradients for reflected finder
// corners; radial gradients ignore rotation entirely.
func resolvePaint(g *style.Gradient, solid style.Color, x, y, w, h, additionalRotation float64) Paint {
	if g == nil {
		return Paint{Solid: solid}
	}
	stops := make([]GradientStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = GradientStop{Offset: s.Offset, Color: s.Color}
	}
	if g.Type == style.GradientRadial {
		return Paint{Radial: &RadialGradient{
			CX:    x + w/2,
			CY:    y + h/2,
			R:     math.Max(w, h) / 2,
			Stops: stops,
		}}
	}
	x1, y1, x2, y2 := linearEndpoints(g.Rotation+additionalRotation, x, y, w, h)
	return Paint{Linear: &LinearGradient{X1: x1, Y1: y1, X2: x2, Y2: y2, Stops: stops}}
}

// linearEndpoints computes the start and end of a linear gradient axis
// crossing the box center at the given rotation from the horizontal. The
// quadrant cases keep the axis spanning the full box for any angle.
func linearEndpoints(rotation, x, y, w, h float64) (x1, y1, x2, y2 float64) {
	rot := math.Mod(rotation, 2*math.Pi)
	pos := math.Mod(rot+2*math.Pi, 2*math.Pi)

	x1 = x + w/2
	y1 = y + h/2
	x2 = x1
	y2 = y1

	switch {
	case pos <= 0.25*math.Pi || pos > 1.75*math.Pi:
		x1 -= w / 2
		y1 -= (h / 2) * math.Tan(rot)
		x2 += w / 2
		y2 += (h / 2) * math.Tan(rot)
	case pos <= 0.75*math.Pi:
		y1 -= h / 2
		x1 -= (w / 2) / math.Tan(rot)
		y2 += h / 2
		x2 += (w / 2) / math.Tan(rot)
	case pos <= 1.25*math.Pi:
		x1 += w / 2
		y1 += (h / 2) * math.Tan(rot)
		x2 -= w / 2
		y2 -= (h / 2) * math.Tan(rot)
	default:
		y1 += h / 2
		x1 += (w / 2) / math.Tan(rot)
		y2 -= h / 2
		x2 -= (w / 2) / math.Tan(rot)
	}
	return math.Round(x1), math.Round(y1), math.Round(x2), math.Round(y2)
}
