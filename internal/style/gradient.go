package style

// Stop is a single color stop in a gradient. Offsets are in [0,1] and
// must be strictly ascending within a gradient.
type Stop struct {
	Offset float64 `mapstructure:"offset" yaml:"offset" json:"offset"`
	Color  Color   `mapstructure:"color" yaml:"color" json:"color"`
}

// Gradient describes a linear or radial gradient. Rotation is in radians
// from the horizontal and applies to linear gradients only.
type Gradient struct {
	Type     GradientType `mapstructure:"type" yaml:"type" json:"type"`
	Rotation float64      `mapstructure:"rotation" yaml:"rotation" json:"rotation"`
	Stops    []Stop       `mapstructure:"stops" yaml:"stops" json:"stops"`
}

// Linear builds a two-color horizontal linear gradient.
func Linear(from, to Color) *Gradient {
	return &Gradient{
		Type:  GradientLinear,
		Stops: []Stop{{Offset: 0, Color: from}, {Offset: 1, Color: to}},
	}
}

// Radial builds a two-color radial gradient from center to edge.
func Radial(center, edge Color) *Gradient {
	return &Gradient{
		Type:  GradientRadial,
		Stops: []Stop{{Offset: 0, Color: center}, {Offset: 1, Color: edge}},
	}
}
