package style

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid configuration field. Validation runs in
// one pass before any geometry is resolved, so a failed configuration is
// never partially applied.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// AsConfigError unwraps a ConfigError from err, if present.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	ok := errors.As(err, &ce)
	return ce, ok
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the whole configuration in one pass and returns the
// first problem found as a ConfigError.
func (o *Options) Validate() error {
	if o.Width < 21 || o.Height < 21 {
		return configErrorf("width/height", "canvas %dx%d is below the 21px minimum", o.Width, o.Height)
	}
	if o.Margin < 0 {
		return configErrorf("margin", "must not be negative, got %d", o.Margin)
	}
	switch o.Shape {
	case ShapeSquare, ShapeCircle:
	default:
		return configErrorf("shape", "unknown shape %q", o.Shape)
	}
	if o.QR.Version < 0 || o.QR.Version > 40 {
		return configErrorf("qr.version", "must be 0 (auto) or 1-40, got %d", o.QR.Version)
	}
	if _, err := ParseECLevel(string(o.QR.Level)); err != nil {
		return configErrorf("qr.level", "%v", err)
	}
	if _, err := ParseDotType(string(o.Dots.Type)); err != nil {
		return configErrorf("dots.type", "%v", err)
	}
	if err := validateGradient("dots.gradient", o.Dots.Gradient); err != nil {
		return err
	}
	if _, err := ParseCornerSquareType(string(o.CornersSquare.Type)); err != nil {
		return configErrorf("corners_square.type", "%v", err)
	}
	if err := validateGradient("corners_square.gradient", o.CornersSquare.Gradient); err != nil {
		return err
	}
	if _, err := ParseCornerDotType(string(o.CornersDot.Type)); err != nil {
		return configErrorf("corners_dot.type", "%v", err)
	}
	if err := validateGradient("corners_dot.gradient", o.CornersDot.Gradient); err != nil {
		return err
	}
	if err := validateGradient("background.gradient", o.Background.Gradient); err != nil {
		return err
	}
	if o.Background.Round < 0 || o.Background.Round > 0.5 {
		return configErrorf("background.round", "must be in [0,0.5], got %v", o.Background.Round)
	}
	if o.Image != nil {
		if o.ImageOptions.SizeRatio <= 0 || o.ImageOptions.SizeRatio > 1 {
			return configErrorf("image_options.size_ratio", "must be in (0,1], got %v", o.ImageOptions.SizeRatio)
		}
		if o.ImageOptions.MarginModules < 0 {
			return configErrorf("image_options.margin_modules", "must not be negative, got %d", o.ImageOptions.MarginModules)
		}
	}
	return nil
}

func validateGradient(field string, g *Gradient) error {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientLinear, GradientRadial:
	default:
		return configErrorf(field, "unknown gradient type %q", g.Type)
	}
	if len(g.Stops) < 2 {
		return configErrorf(field, "needs at least 2 stops, got %d", len(g.Stops))
	}
	prev := -1.0
	for i, s := range g.Stops {
		if s.Offset < 0 || s.Offset > 1 {
			return configErrorf(field, "stop %d offset %v outside [0,1]", i, s.Offset)
		}
		if s.Offset <= prev {
			return configErrorf(field, "stop offsets must be strictly ascending")
		}
		prev = s.Offset
	}
	return nil
}
