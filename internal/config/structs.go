package config

// Config represents the complete configuration for the qrstyle
// application. It covers all commands (generate, serve) and supports
// loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Styling configuration
	Style StyleConfig `mapstructure:"style" yaml:"style" json:"style"`

	// Border frame configuration
	Border BorderConfig `mapstructure:"border" yaml:"border" json:"border"`

	// Output configuration (for generate command)
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// StyleConfig mirrors the styling options in file-friendly form; colors
// are hex strings and enums are their lowercase names.
type StyleConfig struct {
	Width  int    `mapstructure:"width" yaml:"width" json:"width"`
	Height int    `mapstructure:"height" yaml:"height" json:"height"`
	Margin int    `mapstructure:"margin" yaml:"margin" json:"margin"`
	Shape  string `mapstructure:"shape" yaml:"shape" json:"shape"`

	QR            QRConfig         `mapstructure:"qr" yaml:"qr" json:"qr"`
	Dots          DotsConfig       `mapstructure:"dots" yaml:"dots" json:"dots"`
	CornersSquare CornerConfig     `mapstructure:"corners_square" yaml:"corners_square" json:"corners_square"`
	CornersDot    CornerConfig     `mapstructure:"corners_dot" yaml:"corners_dot" json:"corners_dot"`
	Background    BackgroundConfig `mapstructure:"background" yaml:"background" json:"background"`
	Image         ImageConfig      `mapstructure:"image" yaml:"image" json:"image"`
}

// QRConfig contains QR encoding settings.
type QRConfig struct {
	Version int    `mapstructure:"version" yaml:"version" json:"version"`
	Level   string `mapstructure:"level" yaml:"level" json:"level"`
}

// DotsConfig contains the data module styling.
type DotsConfig struct {
	Type      string          `mapstructure:"type" yaml:"type" json:"type"`
	Color     string          `mapstructure:"color" yaml:"color" json:"color"`
	Gradient  *GradientConfig `mapstructure:"gradient" yaml:"gradient,omitempty" json:"gradient,omitempty"`
	RoundSize bool            `mapstructure:"round_size" yaml:"round_size" json:"round_size"`
}

// CornerConfig styles a finder corner layer (frame or center).
type CornerConfig struct {
	Type     string          `mapstructure:"type" yaml:"type" json:"type"`
	Color    string          `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *GradientConfig `mapstructure:"gradient" yaml:"gradient,omitempty" json:"gradient,omitempty"`
}

// BackgroundConfig styles the canvas behind the modules.
type BackgroundConfig struct {
	Color    string          `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *GradientConfig `mapstructure:"gradient" yaml:"gradient,omitempty" json:"gradient,omitempty"`
	Round    float64         `mapstructure:"round" yaml:"round" json:"round"`
}

// GradientConfig describes a two-or-more stop gradient.
type GradientConfig struct {
	Type     string       `mapstructure:"type" yaml:"type" json:"type"`
	Rotation float64      `mapstructure:"rotation" yaml:"rotation" json:"rotation"`
	Stops    []StopConfig `mapstructure:"stops" yaml:"stops" json:"stops"`
}

// StopConfig is one gradient stop.
type StopConfig struct {
	Offset float64 `mapstructure:"offset" yaml:"offset" json:"offset"`
	Color  string  `mapstructure:"color" yaml:"color" json:"color"`
}

// ImageConfig embeds a center logo. Path is resolved by the caller; the
// remaining fields control reservation and sizing.
type ImageConfig struct {
	Path               string  `mapstructure:"path" yaml:"path" json:"path"`
	SizeRatio          float64 `mapstructure:"size_ratio" yaml:"size_ratio" json:"size_ratio"`
	HideBackgroundDots bool    `mapstructure:"hide_background_dots" yaml:"hide_background_dots" json:"hide_background_dots"`
	MarginModules      int     `mapstructure:"margin_modules" yaml:"margin_modules" json:"margin_modules"`
}

// BorderConfig configures the optional outward frame.
type BorderConfig struct {
	Thickness int                    `mapstructure:"thickness" yaml:"thickness" json:"thickness"`
	Color     string                 `mapstructure:"color" yaml:"color" json:"color"`
	Roundness float64                `mapstructure:"roundness" yaml:"roundness" json:"roundness"`
	Dash      []float64              `mapstructure:"dash" yaml:"dash,omitempty" json:"dash,omitempty"`
	Inner     *RingConfig            `mapstructure:"inner" yaml:"inner,omitempty" json:"inner,omitempty"`
	Outer     *RingConfig            `mapstructure:"outer" yaml:"outer,omitempty" json:"outer,omitempty"`
	Labels    map[string]LabelConfig `mapstructure:"labels" yaml:"labels,omitempty" json:"labels,omitempty"`
}

// RingConfig is a secondary decorative stroke on the frame band.
type RingConfig struct {
	Color     string    `mapstructure:"color" yaml:"color" json:"color"`
	Thickness float64   `mapstructure:"thickness" yaml:"thickness" json:"thickness"`
	Dash      []float64 `mapstructure:"dash" yaml:"dash,omitempty" json:"dash,omitempty"`
}

// LabelConfig is a text run on the frame.
type LabelConfig struct {
	Text  string  `mapstructure:"text" yaml:"text" json:"text"`
	Color string  `mapstructure:"color" yaml:"color" json:"color"`
	Size  float64 `mapstructure:"size" yaml:"size" json:"size"`
}

// OutputConfig contains output settings for one-shot generation.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyMB       int    `mapstructure:"max_body_mb" yaml:"max_body_mb" json:"max_body_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Style: StyleConfig{
			Width:  300,
			Height: 300,
			Margin: 0,
			Shape:  "square",
			QR: QRConfig{
				Version: 0,
				Level:   "Q",
			},
			Dots: DotsConfig{
				Type:      "square",
				Color:     "#000000",
				RoundSize: true,
			},
			CornersSquare: CornerConfig{
				Type:  "square",
				Color: "#000000",
			},
			CornersDot: CornerConfig{
				Type:  "dot",
				Color: "#000000",
			},
			Background: BackgroundConfig{
				Color: "#ffffff",
				Round: 0,
			},
			Image: ImageConfig{
				SizeRatio:          0.4,
				HideBackgroundDots: true,
				MarginModules:      0,
			},
		},
		Border: BorderConfig{
			Thickness: 0,
			Color:     "#000000",
			Roundness: 0,
		},
		Output: OutputConfig{
			Format: "svg",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyMB:       10,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
	}
}
