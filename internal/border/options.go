// Package border decorates an encoded render with an outward frame. The
// frame grows the output canvas; the scene underneath is never resized
// or clipped, so module geometry is byte-identical with and without it.
package border

import (
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Position names a label slot on the frame.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// labelOrder fixes the emission order of frame labels so identical
// input produces identical output.
var labelOrder = []Position{PositionTop, PositionBottom, PositionLeft, PositionRight}

// Label is a text run placed on the frame band. Size is the font height
// in pixels; zero means half the frame thickness.
type Label struct {
	Text  string
	Color style.Color
	Size  float64
}

// Ring is a thin decorative stroke hugging one edge of the frame band.
type Ring struct {
	Color     style.Color
	Thickness float64
	Dash      []float64
}

// Options configures the frame. A nil Options or zero Thickness leaves
// the render untouched.
type Options struct {
	// Thickness is the frame width in pixels, added on every side.
	Thickness int
	Color     style.Color
	// Roundness maps [0, 1] onto corner radius, 1 being fully circular.
	Roundness float64
	Dash      []float64
	Inner     *Ring
	Outer     *Ring
	Labels    map[Position]Label
}

// Enabled reports whether applying o changes the output at all.
func (o *Options) Enabled() bool {
	return o != nil && o.Thickness > 0
}

// Validate checks the frame configuration in one pass.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.Thickness < 0 {
		return &style.ConfigError{Field: "border.thickness", Reason: "must not be negative"}
	}
	if o.Roundness < 0 || o.Roundness > 1 {
		return &style.ConfigError{Field: "border.roundness", Reason: "must be between 0 and 1"}
	}
	for _, d := range o.Dash {
		if d <= 0 {
			return &style.ConfigError{Field: "border.dash", Reason: "dash segments must be positive"}
		}
	}
	for _, r := range []*Ring{o.Inner, o.Outer} {
		if r != nil && r.Thickness < 0 {
			return &style.ConfigError{Field: "border.ring.thickness", Reason: "must not be negative"}
		}
	}
	for pos, l := range o.Labels {
		switch pos {
		case PositionTop, PositionBottom, PositionLeft, PositionRight:
		default:
			return &style.ConfigError{Field: "border.labels", Reason: "unknown position " + string(pos)}
		}
		if l.Text == "" {
			return &style.ConfigError{Field: "border.labels", Reason: "label text must not be empty"}
		}
		if l.Size < 0 {
			return &style.ConfigError{Field: "border.labels", Reason: "label size must not be negative"}
		}
	}
	return nil
}

// labelSize resolves the effective font height for a label.
func (o *Options) labelSize(l Label) float64 {
	if l.Size > 0 {
		return l.Size
	}
	return float64(o.Thickness) / 2
}

// labelColor falls back to the frame color when the label has none.
func (o *Options) labelColor(l Label) style.Color {
	if l.Color.A == 0 {
		return o.Color
	}
	return l.Color
}
