package geom

import "github.com/MeKo-Tech/qrstyle/internal/style"

// CornerSquareDrawer emits the 7x7 finder frame for one corner. Finder
// regions are styled independently of the data grid; no neighbor merging
// applies here.
type CornerSquareDrawer struct {
	Type style.CornerSquareType
}

// Draw returns the frame geometry for a finder square anchored at (x, y)
// with the given outer pixel size (seven modules). rotation reflects the
// shape for its corner; the frames are rotationally symmetric, so it only
// feeds gradient orientation downstream.
func (d CornerSquareDrawer) Draw(x, y, size, rotation float64) Primitive {
	switch d.Type {
	case style.CornerSquareDot:
		return cornerRing(x, y, size)
	case style.CornerSquareExtraRounded:
		return cornerExtraRounded(x, y, size, rotation)
	default:
		return cornerFrame(x, y, size, rotation)
	}
}

// cornerRing is a circular ring one module thick.
func cornerRing(x, y, size float64) Primitive {
	moduleSize := size / 7
	half := size / 2
	return Ring{
		CX:    x + half,
		CY:    y + half,
		Outer: half,
		Inner: half - moduleSize,
	}
}

// cornerFrame is a hollow square frame one module thick, drawn as two
// nested rectangle subpaths with even-odd fill.
func cornerFrame(x, y, size, rotation float64) Primitive {
	moduleSize := size / 7
	inner := size - 2*moduleSize
	p := &Path{Rule: FillEvenOdd, Rotation: rotation, Pivot: Point{x + size/2, y + size/2}}
	p.move(x, y)
	p.line(x, y+size)
	p.line(x+size, y+size)
	p.line(x+size, y)
	p.close()
	p.move(x+moduleSize, y+moduleSize)
	p.line(x+moduleSize+inner, y+moduleSize)
	p.line(x+moduleSize+inner, y+moduleSize+inner)
	p.line(x+moduleSize, y+moduleSize+inner)
	p.close()
	return p
}

// cornerExtraRounded is a hollow squircle frame: the outer outline uses a
// 2.5-module corner radius, the inner one 1.5 modules.
func cornerExtraRounded(x, y, size, rotation float64) Primitive {
	ms := size / 7
	p := &Path{Rule: FillEvenOdd, Rotation: rotation, Pivot: Point{x + size/2, y + size/2}}

	// Outer outline, counter-clockwise.
	p.move(x, y+2.5*ms)
	p.line(x, y+4.5*ms)
	p.arc(2.5*ms, false, false, x+2.5*ms, y+7*ms)
	p.line(x+4.5*ms, y+7*ms)
	p.arc(2.5*ms, false, false, x+7*ms, y+4.5*ms)
	p.line(x+7*ms, y+2.5*ms)
	p.arc(2.5*ms, false, false, x+4.5*ms, y)
	p.line(x+2.5*ms, y)
	p.arc(2.5*ms, false, false, x, y+2.5*ms)

	// Inner outline, clockwise so even-odd carves the hole.
	p.move(x+2.5*ms, y+ms)
	p.line(x+4.5*ms, y+ms)
	p.arc(1.5*ms, false, true, x+6*ms, y+2.5*ms)
	p.line(x+6*ms, y+4.5*ms)
	p.arc(1.5*ms, false, true, x+4.5*ms, y+6*ms)
	p.line(x+2.5*ms, y+6*ms)
	p.arc(1.5*ms, false, true, x+ms, y+4.5*ms)
	p.line(x+ms, y+2.5*ms)
	p.arc(1.5*ms, false, true, x+2.5*ms, y+ms)
	return p
}

// CornerDotDrawer emits the 3x3 finder center for one corner.
type CornerDotDrawer struct {
	Type style.CornerDotType
}

// Draw returns the center geometry anchored at (x, y) with the given
// pixel size (three modules).
func (d CornerDotDrawer) Draw(x, y, size, rotation float64) Primitive {
	if d.Type == style.CornerDotSquare {
		return Rect{X: x, Y: y, W: size, H: size}
	}
	return Circle{CX: x + size/2, CY: y + size/2, R: size / 2}
}
