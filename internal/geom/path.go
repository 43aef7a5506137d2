// Package geom synthesizes format-agnostic vector geometry for styled QR
// modules. Primitives carry no paint; encoders translate them to SVG
// elements or raster fills.
package geom

import "math"

// Point is a position in canvas pixel coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Rx > 0 rounds the corners.
type Rect struct {
	X, Y, W, H float64
	Rx         float64
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float64
}

// Ring is an annulus: a filled circle with a concentric hole.
type Ring struct {
	CX, CY       float64
	Outer, Inner float64
}

// FillRule selects how subpath overlaps resolve.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// Op is a path segment operator.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	// OpArc is a circular arc to the end point. Radius, LargeArc and
	// Sweep follow SVG arc semantics with rx == ry.
	OpArc
	OpClose
)

// Segment is one path command with an absolute end point.
type Segment struct {
	Op       Op
	To       Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

// Path is a sequence of subpaths, optionally rotated about Pivot.
// Unclosed subpaths are implicitly closed, as in SVG fills.
type Path struct {
	Rule     FillRule
	Rotation float64
	Pivot    Point
	Segments []Segment
}

func (p *Path) move(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpMove, To: Point{x, y}})
	return p
}

func (p *Path) line(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpLine, To: Point{x, y}})
	return p
}

func (p *Path) arc(radius float64, largeArc, sweep bool, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpArc, To: Point{x, y}, Radius: radius, LargeArc: largeArc, Sweep: sweep})
	return p
}

func (p *Path) close() *Path {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
	return p
}

// Primitive is any drawable shape.
type Primitive interface {
	Bounds() Rect
}

// Bounds returns the rectangle itself, without corner rounding.
func (r Rect) Bounds() Rect { return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.CX - c.R, Y: c.CY - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Bounds returns the bounding box of the outer circle.
func (r Ring) Bounds() Rect {
	return Rect{X: r.CX - r.Outer, Y: r.CY - r.Outer, W: 2 * r.Outer, H: 2 * r.Outer}
}

// Bounds returns the bounding box of the path, including the bulge of
// arc segments beyond their end points. Rotation is ignored; every path
// in this package rotates within its own module box.
func (p *Path) Bounds() Rect {
	if len(p.Segments) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	visit := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	var cur, start Point
	for _, s := range p.Segments {
		switch s.Op {
		case OpClose:
			cur = start
			continue
		case OpMove:
			start = s.To
		case OpArc:
			arcExtremes(cur, s.To, s.Radius, s.LargeArc, s.Sweep, visit)
		}
		visit(s.To.X, s.To.Y)
		cur = s.To
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// arcExtremes visits the axis-aligned extreme points of a circular arc
// from a to b. Radius and flags follow SVG arc semantics with rx == ry;
// an undersized radius is scaled up to reach the chord, as SVG does.
func arcExtremes(a, b Point, radius float64, largeArc, sweep bool, visit func(x, y float64)) {
	dx := (a.X - b.X) / 2
	dy := (a.Y - b.Y) / 2
	d2 := dx*dx + dy*dy
	if d2 == 0 || radius == 0 {
		return
	}
	r := math.Abs(radius)
	if r*r < d2 {
		r = math.Sqrt(d2)
	}
	f := math.Sqrt(math.Max(0, r*r-d2) / d2)
	if largeArc == sweep {
		f = -f
	}
	cx := f*dy + (a.X+b.X)/2
	cy := -f*dx + (a.Y+b.Y)/2

	from := math.Atan2(a.Y-cy, a.X-cx)
	to := math.Atan2(b.Y-cy, b.X-cx)
	for k := 0; k < 4; k++ {
		axis := float64(k) * math.Pi / 2
		if angleOnArc(from, to, sweep, axis) {
			visit(cx+r*math.Cos(axis), cy+r*math.Sin(axis))
		}
	}
}

// angleOnArc reports whether angle lies on the arc traced from start to
// end in the sweep direction.
func angleOnArc(start, end float64, sweep bool, angle float64) bool {
	if !sweep {
		start, end = end, start
	}
	span := normAngle(end - start)
	return normAngle(angle-start) <= span
}

func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Union returns the smallest rectangle covering both.
func Union(a, b Rect) Rect {
	if a.W == 0 && a.H == 0 {
		return b
	}
	if b.W == 0 && b.H == 0 {
		return a
	}
	x0 := math.Min(a.X, b.X)
	y0 := math.Min(a.Y, b.Y)
	x1 := math.Max(a.X+a.W, b.X+b.W)
	y1 := math.Max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
