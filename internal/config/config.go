package config

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

// Validate validates the configuration and returns any errors. Styling
// fields are checked by building the styling options, so config files
// and directly constructed options fail with the same messages.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	opts, err := c.ToStyleOptions("validation-probe", nil)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	bopts, err := c.ToBorderOptions()
	if err != nil {
		return err
	}
	if err := bopts.Validate(); err != nil {
		return err
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.MaxBodyMB <= 0 {
		return fmt.Errorf("invalid max body size: %d (must be positive)", c.Server.MaxBodyMB)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout: %d (must be positive)", c.Server.TimeoutSec)
	}
	return nil
}

// ToStyleOptions converts the file-level configuration into styling
// options for the given payload. image carries the logo bytes already
// loaded from Style.Image.Path (or another source); pass nil for none.
func (c *Config) ToStyleOptions(data string, image []byte) (*style.Options, error) {
	opts := style.DefaultOptions()
	opts.Data = data
	opts.Width = c.Style.Width
	opts.Height = c.Style.Height
	opts.Margin = c.Style.Margin
	opts.Shape = style.ShapeType(c.Style.Shape)
	opts.QR.Version = c.Style.QR.Version
	opts.QR.Level = style.ECLevel(strings.ToUpper(c.Style.QR.Level))

	opts.Dots.Type = style.DotType(c.Style.Dots.Type)
	opts.Dots.RoundSize = c.Style.Dots.RoundSize
	var err error
	if opts.Dots.Color, err = parseColor("style.dots.color", c.Style.Dots.Color); err != nil {
		return nil, err
	}
	if opts.Dots.Gradient, err = toGradient("style.dots.gradient", c.Style.Dots.Gradient); err != nil {
		return nil, err
	}

	opts.CornersSquare.Type = style.CornerSquareType(c.Style.CornersSquare.Type)
	if opts.CornersSquare.Color, err = parseColor("style.corners_square.color", c.Style.CornersSquare.Color); err != nil {
		return nil, err
	}
	if opts.CornersSquare.Gradient, err = toGradient("style.corners_square.gradient", c.Style.CornersSquare.Gradient); err != nil {
		return nil, err
	}

	opts.CornersDot.Type = style.CornerDotType(c.Style.CornersDot.Type)
	if opts.CornersDot.Color, err = parseColor("style.corners_dot.color", c.Style.CornersDot.Color); err != nil {
		return nil, err
	}
	if opts.CornersDot.Gradient, err = toGradient("style.corners_dot.gradient", c.Style.CornersDot.Gradient); err != nil {
		return nil, err
	}

	opts.Background.Round = c.Style.Background.Round
	if opts.Background.Color, err = parseColor("style.background.color", c.Style.Background.Color); err != nil {
		return nil, err
	}
	if opts.Background.Gradient, err = toGradient("style.background.gradient", c.Style.Background.Gradient); err != nil {
		return nil, err
	}

	opts.Image = image
	opts.ImageOptions.SizeRatio = c.Style.Image.SizeRatio
	opts.ImageOptions.HideBackgroundDots = c.Style.Image.HideBackgroundDots
	opts.ImageOptions.MarginModules = c.Style.Image.MarginModules
	return opts, nil
}

// ToBorderOptions converts the frame section.
func (c *Config) ToBorderOptions() (*border.Options, error) {
	o := &border.Options{
		Thickness: c.Border.Thickness,
		Roundness: c.Border.Roundness,
		Dash:      c.Border.Dash,
	}
	var err error
	if o.Color, err = parseColor("border.color", c.Border.Color); err != nil {
		return nil, err
	}
	if o.Inner, err = toRing("border.inner", c.Border.Inner); err != nil {
		return nil, err
	}
	if o.Outer, err = toRing("border.outer", c.Border.Outer); err != nil {
		return nil, err
	}
	if len(c.Border.Labels) > 0 {
		o.Labels = make(map[border.Position]border.Label, len(c.Border.Labels))
		for pos, l := range c.Border.Labels {
			color, err := parseColor("border.labels."+pos+".color", l.Color)
			if err != nil {
				return nil, err
			}
			o.Labels[border.Position(strings.ToLower(pos))] = border.Label{
				Text:  l.Text,
				Color: color,
				Size:  l.Size,
			}
		}
	}
	return o, nil
}

func toRing(field string, r *RingConfig) (*border.Ring, error) {
	if r == nil {
		return nil, nil
	}
	color, err := parseColor(field+".color", r.Color)
	if err != nil {
		return nil, err
	}
	return &border.Ring{Color: color, Thickness: r.Thickness, Dash: r.Dash}, nil
}

func toGradient(field string, g *GradientConfig) (*style.Gradient, error) {
	if g == nil {
		return nil, nil
	}
	out := &style.Gradient{
		Type:     style.GradientType(g.Type),
		Rotation: g.Rotation,
		Stops:    make([]style.Stop, len(g.Stops)),
	}
	for i, s := range g.Stops {
		color, err := parseColor(fmt.Sprintf("%s.stops[%d].color", field, i), s.Color)
		if err != nil {
			return nil, err
		}
		out.Stops[i] = style.Stop{Offset: s.Offset, Color: color}
	}
	return out, nil
}

// parseColor parses a hex color, treating the empty string as
// transparent so optional colors can be omitted.
func parseColor(field, s string) (style.Color, error) {
	if s == "" {
		return style.Transparent, nil
	}
	c, err := style.ParseColor(s)
	if err != nil {
		return style.Color{}, &style.ConfigError{Field: field, Reason: err.Error()}
	}
	return c, nil
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
