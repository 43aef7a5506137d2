package style

// Options is the full styling configuration for one render. Construct it
// with DefaultOptions and override fields, then call Validate once before
// handing it to the scene assembler. There is no builder; every field has
// a documented default.
type Options struct {
	// Data to encode. Opaque to the styling core.
	Data string `mapstructure:"data" yaml:"data" json:"data"`
	// Canvas width and height in pixels. Default 300x300.
	Width  int `mapstructure:"width" yaml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" json:"height"`
	// Margin is the quiet zone around the module grid, in module units.
	// Default 0.
	Margin int `mapstructure:"margin" yaml:"margin" json:"margin"`
	// Overall canvas shape. Default square.
	Shape ShapeType `mapstructure:"shape" yaml:"shape" json:"shape"`

	QR            QROptions            `mapstructure:"qr" yaml:"qr" json:"qr"`
	Dots          DotsOptions          `mapstructure:"dots" yaml:"dots" json:"dots"`
	CornersSquare CornersSquareOptions `mapstructure:"corners_square" yaml:"corners_square" json:"corners_square"`
	CornersDot    CornersDotOptions    `mapstructure:"corners_dot" yaml:"corners_dot" json:"corners_dot"`
	Background    BackgroundOptions    `mapstructure:"background" yaml:"background" json:"background"`

	// Logo image bytes (PNG/JPEG/WebP), or nil for no logo.
	Image []byte `mapstructure:"-" yaml:"-" json:"-"`
	// Logo placement options. Only consulted when Image is set.
	ImageOptions ImageOptions `mapstructure:"image_options" yaml:"image_options" json:"image_options"`
}

// QROptions configures the encoding collaborator.
type QROptions struct {
	// Version 0 selects the smallest version that fits; 1-40 forces one.
	Version int `mapstructure:"version" yaml:"version" json:"version"`
	// Error correction level. Default Q.
	Level ECLevel `mapstructure:"level" yaml:"level" json:"level"`
}

// DotsOptions styles ordinary data modules.
type DotsOptions struct {
	Type     DotType   `mapstructure:"type" yaml:"type" json:"type"`
	Color    Color     `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *Gradient `mapstructure:"gradient" yaml:"gradient" json:"gradient,omitempty"`
	// RoundSize floors the module size to whole pixels. Default true.
	RoundSize bool `mapstructure:"round_size" yaml:"round_size" json:"round_size"`
}

// CornersSquareOptions styles the 7x7 finder frames.
type CornersSquareOptions struct {
	Type     CornerSquareType `mapstructure:"type" yaml:"type" json:"type"`
	Color    Color            `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *Gradient        `mapstructure:"gradient" yaml:"gradient" json:"gradient,omitempty"`
}

// CornersDotOptions styles the 3x3 finder centers.
type CornersDotOptions struct {
	Type     CornerDotType `mapstructure:"type" yaml:"type" json:"type"`
	Color    Color         `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *Gradient     `mapstructure:"gradient" yaml:"gradient" json:"gradient,omitempty"`
}

// BackgroundOptions styles the canvas background.
type BackgroundOptions struct {
	Color    Color     `mapstructure:"color" yaml:"color" json:"color"`
	Gradient *Gradient `mapstructure:"gradient" yaml:"gradient" json:"gradient,omitempty"`
	// Round is the corner radius ratio of a square background, in [0,0.5].
	Round float64 `mapstructure:"round" yaml:"round" json:"round"`
}

// ImageOptions governs logo placement and background-dot suppression.
// It never affects encoding.
type ImageOptions struct {
	// SizeRatio is the logo footprint relative to the module grid, in (0,1].
	// Default 0.4.
	SizeRatio float64 `mapstructure:"size_ratio" yaml:"size_ratio" json:"size_ratio"`
	// HideBackgroundDots suppresses data modules under the logo. Default true.
	HideBackgroundDots bool `mapstructure:"hide_background_dots" yaml:"hide_background_dots" json:"hide_background_dots"`
	// MarginModules expands the exclusion region on each side, in modules.
	// Default 0.
	MarginModules int `mapstructure:"margin_modules" yaml:"margin_modules" json:"margin_modules"`
}

// DefaultOptions returns the documented defaults: 300x300 px, square black
// dots on white, plain finder frames with circular centers, EC level Q,
// logo ratio 0.4 with background dots hidden.
func DefaultOptions() *Options {
	return &Options{
		Width:  300,
		Height: 300,
		Margin: 0,
		Shape:  ShapeSquare,
		QR: QROptions{
			Version: 0,
			Level:   ECQuartile,
		},
		Dots: DotsOptions{
			Type:      DotSquare,
			Color:     Black,
			RoundSize: true,
		},
		CornersSquare: CornersSquareOptions{
			Type:  CornerSquarePlain,
			Color: Black,
		},
		CornersDot: CornersDotOptions{
			Type:  CornerDotDot,
			Color: Black,
		},
		Background: BackgroundOptions{
			Color: White,
		},
		ImageOptions: ImageOptions{
			SizeRatio:          0.4,
			HideBackgroundDots: true,
		},
	}
}
