package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/qrstyle/internal/border"
	"github.com/MeKo-Tech/qrstyle/internal/style"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)

	assert.Equal(t, 300, cfg.Style.Width)
	assert.Equal(t, 300, cfg.Style.Height)
	assert.Equal(t, "square", cfg.Style.Shape)
	assert.Equal(t, "Q", cfg.Style.QR.Level)
	assert.Equal(t, "square", cfg.Style.Dots.Type)
	assert.Equal(t, "#000000", cfg.Style.Dots.Color)
	assert.True(t, cfg.Style.Dots.RoundSize)
	assert.Equal(t, "#ffffff", cfg.Style.Background.Color)
	assert.InDelta(t, 0.4, cfg.Style.Image.SizeRatio, 1e-9)
	assert.True(t, cfg.Style.Image.HideBackgroundDots)

	assert.Equal(t, 0, cfg.Border.Thickness)
	assert.Equal(t, "svg", cfg.Output.Format)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad color", func(c *Config) { c.Style.Dots.Color = "not-a-color" }, "style.dots.color"},
		{"bad dot type", func(c *Config) { c.Style.Dots.Type = "wavy" }, "dots.type"},
		{"tiny canvas", func(c *Config) { c.Style.Width = 10 }, "width"},
		{"bad border roundness", func(c *Config) { c.Border.Roundness = 3 }, "roundness"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "port"},
		{"bad body size", func(c *Config) { c.Server.MaxBodyMB = 0 }, "body size"},
		{"bad timeout", func(c *Config) { c.Server.TimeoutSec = -1 }, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ToStyleOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.Width = 512
	cfg.Style.Margin = 2
	cfg.Style.Shape = "circle"
	cfg.Style.QR.Level = "h"
	cfg.Style.Dots.Type = "classy"
	cfg.Style.Dots.Color = "#112233"
	cfg.Style.Dots.Gradient = &GradientConfig{
		Type:     "linear",
		Rotation: 0.5,
		Stops: []StopConfig{
			{Offset: 0, Color: "#000000"},
			{Offset: 1, Color: "#ff00ff"},
		},
	}
	cfg.Style.Background.Round = 0.2

	logo := []byte{0x89, 'P', 'N', 'G'}
	opts, err := cfg.ToStyleOptions("hello", logo)
	require.NoError(t, err)

	assert.Equal(t, "hello", opts.Data)
	assert.Equal(t, 512, opts.Width)
	assert.Equal(t, 2, opts.Margin)
	assert.Equal(t, style.ShapeCircle, opts.Shape)
	// Level names are case-insensitive in files.
	assert.Equal(t, style.ECHigh, opts.QR.Level)
	assert.Equal(t, style.DotClassy, opts.Dots.Type)
	assert.Equal(t, style.MustColor("#112233"), opts.Dots.Color)

	require.NotNil(t, opts.Dots.Gradient)
	assert.Equal(t, style.GradientLinear, opts.Dots.Gradient.Type)
	assert.InDelta(t, 0.5, opts.Dots.Gradient.Rotation, 1e-9)
	require.Len(t, opts.Dots.Gradient.Stops, 2)
	assert.Equal(t, style.MustColor("#ff00ff"), opts.Dots.Gradient.Stops[1].Color)

	assert.InDelta(t, 0.2, opts.Background.Round, 1e-9)
	assert.Equal(t, logo, opts.Image)

	require.NoError(t, opts.Validate())
}

func TestConfig_ToStyleOptions_BadColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.CornersDot.Color = "#zz"

	_, err := cfg.ToStyleOptions("x", nil)
	require.Error(t, err)
	ce, ok := style.AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, "style.corners_dot.color", ce.Field)
}

func TestConfig_ToStyleOptions_EmptyColorIsTransparent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.Background.Color = ""

	opts, err := cfg.ToStyleOptions("x", nil)
	require.NoError(t, err)
	assert.Equal(t, style.Transparent, opts.Background.Color)
}

func TestConfig_ToBorderOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Border.Thickness = 40
	cfg.Border.Color = "#336699"
	cfg.Border.Roundness = 0.8
	cfg.Border.Dash = []float64{6, 3}
	cfg.Border.Inner = &RingConfig{Color: "#ffffff", Thickness: 2}
	cfg.Border.Labels = map[string]LabelConfig{
		"Top":    {Text: "SCAN ME"},
		"bottom": {Text: "example.com", Color: "#ffffff", Size: 14},
	}

	o, err := cfg.ToBorderOptions()
	require.NoError(t, err)

	assert.True(t, o.Enabled())
	assert.Equal(t, 40, o.Thickness)
	assert.Equal(t, style.MustColor("#336699"), o.Color)
	assert.InDelta(t, 0.8, o.Roundness, 1e-9)
	assert.Equal(t, []float64{6, 3}, o.Dash)

	require.NotNil(t, o.Inner)
	assert.Equal(t, style.White, o.Inner.Color)
	assert.Nil(t, o.Outer)

	// Position keys are normalized to lowercase.
	require.Contains(t, o.Labels, border.PositionTop)
	require.Contains(t, o.Labels, border.PositionBottom)
	assert.Equal(t, "SCAN ME", o.Labels[border.PositionTop].Text)
	assert.InDelta(t, 14, o.Labels[border.PositionBottom].Size, 1e-9)

	require.NoError(t, o.Validate())
}

func TestConfig_ToBorderOptions_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	o, err := cfg.ToBorderOptions()
	require.NoError(t, err)
	assert.False(t, o.Enabled())
}
