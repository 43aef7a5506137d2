package geom

import (
	"math"

	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// NeighborFunc reports whether the module at the given offset from the
// current one is active and drawable. Out-of-bounds offsets report false.
type NeighborFunc func(dx, dy int) bool

// DotDrawer emits one primitive per active data module. The rounded and
// classy styles consult the orthogonal neighborhood to decide which
// corners stay square so runs of active modules merge into a continuous
// silhouette.
type DotDrawer struct {
	Type style.DotType
}

// Draw returns the geometry for a module at (x, y) with the given pixel
// size. neighbor may be nil, which draws the module as isolated.
func (d DotDrawer) Draw(x, y, size float64, neighbor NeighborFunc) Primitive {
	switch d.Type {
	case style.DotDots:
		return basicDot(x, y, size)
	case style.DotRounded:
		return d.drawRounded(x, y, size, neighbor, false)
	case style.DotExtraRounded:
		return d.drawRounded(x, y, size, neighbor, true)
	case style.DotClassy:
		return d.drawClassy(x, y, size, neighbor, false)
	case style.DotClassyRounded:
		return d.drawClassy(x, y, size, neighbor, true)
	default:
		return basicSquare(x, y, size)
	}
}

type neighbors struct {
	left, right, top, bottom bool
}

func (n neighbors) count() int {
	c := 0
	for _, v := range []bool{n.left, n.right, n.top, n.bottom} {
		if v {
			c++
		}
	}
	return c
}

func lookupNeighbors(neighbor NeighborFunc) neighbors {
	if neighbor == nil {
		return neighbors{}
	}
	return neighbors{
		left:   neighbor(-1, 0),
		right:  neighbor(1, 0),
		top:    neighbor(0, -1),
		bottom: neighbor(0, 1),
	}
}

// drawRounded renders the rounded and extra-rounded styles. An isolated
// module is a circle; a module with facing neighbors on opposite sides or
// three or more neighbors is a plain square; two adjacent neighbors leave
// one rounded corner; one neighbor leaves a rounded far side.
func (d DotDrawer) drawRounded(x, y, size float64, neighbor NeighborFunc, extra bool) Primitive {
	n := lookupNeighbors(neighbor)
	count := n.count()

	if count == 0 {
		return basicDot(x, y, size)
	}
	if count > 2 || (n.left && n.right) || (n.top && n.bottom) {
		return basicSquare(x, y, size)
	}
	if count == 2 {
		rotation := cornerRotation(n)
		if extra {
			return basicCornerExtraRounded(x, y, size, rotation)
		}
		return basicCornerRounded(x, y, size, rotation)
	}
	return basicSideRounded(x, y, size, sideRotation(n))
}

// drawClassy renders the classy and classy-rounded styles: the top-left
// and bottom-right corners round out whenever their side pair is free,
// producing the alternating leaf silhouette.
func (d DotDrawer) drawClassy(x, y, size float64, neighbor NeighborFunc, extra bool) Primitive {
	n := lookupNeighbors(neighbor)

	if n.count() == 0 {
		return basicCornersRounded(x, y, size, math.Pi/2)
	}
	if !n.left && !n.top {
		if extra {
			return basicCornerExtraRounded(x, y, size, -math.Pi/2)
		}
		return basicCornerRounded(x, y, size, -math.Pi/2)
	}
	if !n.right && !n.bottom {
		if extra {
			return basicCornerExtraRounded(x, y, size, math.Pi/2)
		}
		return basicCornerRounded(x, y, size, math.Pi/2)
	}
	return basicSquare(x, y, size)
}

// cornerRotation orients the single rounded corner away from the two
// adjacent neighbors.
func cornerRotation(n neighbors) float64 {
	switch {
	case n.left && n.top:
		return math.Pi / 2
	case n.top && n.right:
		return math.Pi
	case n.right && n.bottom:
		return -math.Pi / 2
	default:
		return 0
	}
}

// sideRotation orients the rounded side away from the lone neighbor.
func sideRotation(n neighbors) float64 {
	switch {
	case n.top:
		return math.Pi / 2
	case n.right:
		return math.Pi
	case n.bottom:
		return -math.Pi / 2
	default:
		return 0
	}
}

func basicDot(x, y, size float64) Primitive {
	return Circle{CX: x + size/2, CY: y + size/2, R: size / 2}
}

func basicSquare(x, y, size float64) Primitive {
	return Rect{X: x, Y: y, W: size, H: size}
}

// basicSideRounded is a square with one semicircular side; at rotation 0
// the right side is rounded.
func basicSideRounded(x, y, size, rotation float64) Primitive {
	half := size / 2
	p := &Path{Rotation: rotation, Pivot: Point{x + half, y + half}}
	p.move(x, y)
	p.line(x, y+size)
	p.line(x+half, y+size)
	p.arc(half, false, false, x+half, y)
	return p
}

// basicCornerRounded is a square with one quarter-circle corner of radius
// size/2; at rotation 0 the top-right corner is rounded.
func basicCornerRounded(x, y, size, rotation float64) Primitive {
	half := size / 2
	p := &Path{Rotation: rotation, Pivot: Point{x + half, y + half}}
	p.move(x, y)
	p.line(x, y+size)
	p.line(x+size, y+size)
	p.line(x+size, y+half)
	p.arc(half, false, false, x+half, y)
	return p
}

// basicCornerExtraRounded rounds one corner with the full module size as
// radius, approaching a quarter circle.
func basicCornerExtraRounded(x, y, size, rotation float64) Primitive {
	half := size / 2
	p := &Path{Rotation: rotation, Pivot: Point{x + half, y + half}}
	p.move(x, y)
	p.line(x, y+size)
	p.line(x+size, y+size)
	p.arc(size, false, false, x, y)
	return p
}

// basicCornersRounded rounds two opposite corners (bottom-left and
// top-right at rotation 0).
func basicCornersRounded(x, y, size, rotation float64) Primitive {
	half := size / 2
	p := &Path{Rotation: rotation, Pivot: Point{x + half, y + half}}
	p.move(x, y)
	p.line(x, y+half)
	p.arc(half, false, false, x+half, y+size)
	p.line(x+size, y+size)
	p.line(x+size, y+half)
	p.arc(half, false, false, x+half, y)
	return p
}
