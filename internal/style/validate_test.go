package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	assert.Equal(t, 300, o.Width)
	assert.Equal(t, 300, o.Height)
	assert.Equal(t, 0, o.Margin)
	assert.Equal(t, ShapeSquare, o.Shape)
	assert.Equal(t, ECQuartile, o.QR.Level)
	assert.Equal(t, DotSquare, o.Dots.Type)
	assert.Equal(t, Black, o.Dots.Color)
	assert.True(t, o.Dots.RoundSize)
	assert.Equal(t, CornerSquarePlain, o.CornersSquare.Type)
	assert.Equal(t, CornerDotDot, o.CornersDot.Type)
	assert.Equal(t, White, o.Background.Color)
	assert.InDelta(t, 0.4, o.ImageOptions.SizeRatio, 1e-9)
	assert.True(t, o.ImageOptions.HideBackgroundDots)

	require.NoError(t, o.Validate())
}

func TestOptions_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"canvas too small", func(o *Options) { o.Width = 20 }, "width/height"},
		{"negative margin", func(o *Options) { o.Margin = -1 }, "margin"},
		{"bad shape", func(o *Options) { o.Shape = "hexagon" }, "shape"},
		{"version out of range", func(o *Options) { o.QR.Version = 41 }, "qr.version"},
		{"bad level", func(o *Options) { o.QR.Level = "X" }, "qr.level"},
		{"bad dot type", func(o *Options) { o.Dots.Type = "wavy" }, "dots.type"},
		{"bad corner square type", func(o *Options) { o.CornersSquare.Type = "rounded" }, "corners_square.type"},
		{"bad corner dot type", func(o *Options) { o.CornersDot.Type = "classy" }, "corners_dot.type"},
		{"background round too large", func(o *Options) { o.Background.Round = 0.6 }, "background.round"},
		{"background round negative", func(o *Options) { o.Background.Round = -0.1 }, "background.round"},
		{
			"size ratio zero",
			func(o *Options) { o.Image = []byte{1}; o.ImageOptions.SizeRatio = 0 },
			"image_options.size_ratio",
		},
		{
			"negative image margin",
			func(o *Options) { o.Image = []byte{1}; o.ImageOptions.MarginModules = -2 },
			"image_options.margin_modules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(o)
			err := o.Validate()
			require.Error(t, err)
			ce, ok := AsConfigError(err)
			require.True(t, ok, "expected a ConfigError, got %v", err)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestOptions_Validate_ImageOptionsIgnoredWithoutImage(t *testing.T) {
	o := DefaultOptions()
	o.ImageOptions.SizeRatio = 0
	require.NoError(t, o.Validate())
}

func TestValidateGradient(t *testing.T) {
	tests := []struct {
		name    string
		grad    *Gradient
		wantErr bool
	}{
		{"nil gradient", nil, false},
		{"linear two stops", Linear(Black, White), false},
		{"radial two stops", Radial(White, Black), false},
		{
			"unknown type",
			&Gradient{Type: "conic", Stops: []Stop{{0, Black}, {1, White}}},
			true,
		},
		{
			"single stop",
			&Gradient{Type: GradientLinear, Stops: []Stop{{0, Black}}},
			true,
		},
		{
			"offset above one",
			&Gradient{Type: GradientLinear, Stops: []Stop{{0, Black}, {1.5, White}}},
			true,
		},
		{
			"descending offsets",
			&Gradient{Type: GradientLinear, Stops: []Stop{{0.8, Black}, {0.2, White}}},
			true,
		},
		{
			"duplicate offsets",
			&Gradient{Type: GradientLinear, Stops: []Stop{{0.5, Black}, {0.5, White}}},
			true,
		},
		{
			"three ascending stops",
			&Gradient{Type: GradientRadial, Stops: []Stop{{0, Black}, {0.5, White}, {1, Black}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			o.Dots.Gradient = tt.grad
			err := o.Validate()
			if tt.wantErr {
				require.Error(t, err)
				ce, ok := AsConfigError(err)
				require.True(t, ok)
				assert.Equal(t, "dots.gradient", ce.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Field: "margin", Reason: "must not be negative, got -3"}
	assert.Equal(t, "invalid configuration: margin: must not be negative, got -3", err.Error())
}
