package style

import "fmt"

// DotType selects the geometry used for ordinary data modules.
type DotType string

const (
	DotSquare        DotType = "square"
	DotDots          DotType = "dots"
	DotRounded       DotType = "rounded"
	DotExtraRounded  DotType = "extra-rounded"
	DotClassy        DotType = "classy"
	DotClassyRounded DotType = "classy-rounded"
)

// ParseDotType parses a dot type name as used in config files and CLI flags.
func ParseDotType(s string) (DotType, error) {
	switch DotType(s) {
	case DotSquare, DotDots, DotRounded, DotExtraRounded, DotClassy, DotClassyRounded:
		return DotType(s), nil
	}
	return "", fmt.Errorf("unknown dot type %q", s)
}

// CornerSquareType selects the geometry of the 7x7 finder frames.
type CornerSquareType string

const (
	CornerSquarePlain        CornerSquareType = "square"
	CornerSquareDot          CornerSquareType = "dot"
	CornerSquareExtraRounded CornerSquareType = "extra-rounded"
)

// ParseCornerSquareType parses a corner square type name.
func ParseCornerSquareType(s string) (CornerSquareType, error) {
	switch CornerSquareType(s) {
	case CornerSquarePlain, CornerSquareDot, CornerSquareExtraRounded:
		return CornerSquareType(s), nil
	}
	return "", fmt.Errorf("unknown corner square type %q", s)
}

// CornerDotType selects the geometry of the 3x3 finder centers.
type CornerDotType string

const (
	CornerDotDot    CornerDotType = "dot"
	CornerDotSquare CornerDotType = "square"
)

// ParseCornerDotType parses a corner dot type name.
func ParseCornerDotType(s string) (CornerDotType, error) {
	switch CornerDotType(s) {
	case CornerDotDot, CornerDotSquare:
		return CornerDotType(s), nil
	}
	return "", fmt.Errorf("unknown corner dot type %q", s)
}

// ShapeType selects the overall canvas shape. It affects only the
// background/canvas geometry, never the module geometry.
type ShapeType string

const (
	ShapeSquare ShapeType = "square"
	ShapeCircle ShapeType = "circle"
)

// ParseShapeType parses a canvas shape name.
func ParseShapeType(s string) (ShapeType, error) {
	switch ShapeType(s) {
	case ShapeSquare, ShapeCircle:
		return ShapeType(s), nil
	}
	return "", fmt.Errorf("unknown shape type %q", s)
}

// GradientType distinguishes linear from radial gradients.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// ECLevel is the QR error correction level. It is consumed by the
// encoding collaborator and by the logo budget computation.
type ECLevel string

const (
	ECLow      ECLevel = "L" // ~7% recovery
	ECMedium   ECLevel = "M" // ~15% recovery
	ECQuartile ECLevel = "Q" // ~25% recovery
	ECHigh     ECLevel = "H" // ~30% recovery
)

// ParseECLevel parses an error correction level name.
func ParseECLevel(s string) (ECLevel, error) {
	switch ECLevel(s) {
	case ECLow, ECMedium, ECQuartile, ECHigh:
		return ECLevel(s), nil
	}
	return "", fmt.Errorf("unknown error correction level %q", s)
}

// Percentage returns the fraction of modules the level can recover.
func (l ECLevel) Percentage() float64 {
	switch l {
	case ECLow:
		return 0.07
	case ECMedium:
		return 0.15
	case ECHigh:
		return 0.30
	default:
		return 0.25
	}
}
