// Package scene turns a classified module matrix plus a style
// configuration into an ordered, paintable vector scene. The scene is the
// format-agnostic contract with the output encoders: shape groups in
// painter's order with fully resolved paint.
package scene

import (
	"github.com/MeKo-Tech/qrstyle/internal/geom"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Kind labels the role of a shape group in the paint order.
type Kind uint8

const (
	KindBackground Kind = iota
	KindDot
	// KindEdgeDot is a decorative dot outside the module grid, emitted
	// only for the circle canvas shape. Cosmetic; never part of the code.
	KindEdgeDot
	KindCornerSquare
	KindCornerDot
	// KindLogoSpace marks the logo footprint. The core renders only the
	// placeholder; encoders draw the image bytes into it.
	KindLogoSpace
)

func (k Kind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindDot:
		return "dot"
	case KindEdgeDot:
		return "edge-dot"
	case KindCornerSquare:
		return "corner-square"
	case KindCornerDot:
		return "corner-dot"
	case KindLogoSpace:
		return "logo-space"
	}
	return "unknown"
}

// Paint is a resolved paint descriptor: exactly one of Solid (implicit
// when both gradients are nil), Linear or Radial.
type Paint struct {
	Solid  style.Color
	Linear *LinearGradient
	Radial *RadialGradient
}

// GradientStop is a resolved gradient stop.
type GradientStop struct {
	Offset float64
	Color  style.Color
}

// LinearGradient has absolute endpoints in canvas pixels.
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Stops          []GradientStop
}

// RadialGradient is centered at (CX, CY) with radius R in canvas pixels.
type RadialGradient struct {
	CX, CY, R float64
	Stops     []GradientStop
}

// ShapeGroup is one paintable unit: a small list of primitives sharing a
// paint. Region is a stable identifier shared by groups that encoders may
// coalesce (for example all data dots share one clip region in SVG).
type ShapeGroup struct {
	Kind     Kind
	Region   string
	Geometry []geom.Primitive
	Paint    Paint
}

// LogoPlacement tells encoders where to draw the logo bytes.
type LogoPlacement struct {
	Rect  geom.Rect
	Image []byte
	MIME  string
}

// Scene is the ordered output of the assembler. Groups are in painter's
// order: background, data dots, corner squares, corner dots, logo
// placeholder. Identical inputs always produce identical scenes.
type Scene struct {
	Width, Height int
	// Groups in paint order.
	Groups []ShapeGroup
	// Logo is nil when no image is configured.
	Logo *LogoPlacement
	// CrispEdges is set when module sizes are not floored to whole
	// pixels, hinting raster-friendly edge rendering to encoders.
	CrispEdges bool
}

// Bounds aggregates the bounding boxes of all groups.
func (s *Scene) Bounds() geom.Rect {
	var b geom.Rect
	for _, g := range s.Groups {
		for _, p := range g.Geometry {
			b = geom.Union(b, p.Bounds())
		}
	}
	return b
}

// GroupCount returns the number of groups of the given kind.
func (s *Scene) GroupCount(kind Kind) int {
	n := 0
	for _, g := range s.Groups {
		if g.Kind == kind {
			n++
		}
	}
	return n
}
