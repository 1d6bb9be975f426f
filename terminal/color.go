package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// General colors shared by renderers
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	DimGray   = RGB{100, 100, 100}
	SlateGray = RGB{112, 128, 144}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Scale multiplies each channel by f, saturating at 255.
// f <= 0 returns black.
func (c RGB) Scale(f float64) RGB {
	if f <= 0 {
		return Black
	}
	r, g, b := float64(c.R)*f, float64(c.G)*f, float64(c.B)*f
	if r > 255 {
		r = 255
	}
	if g > 255 {
		g = 255
	}
	if b > 255 {
		b = 255
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// Add sums two colors channel-wise, saturating at 255.
func (c RGB) Add(other RGB) RGB {
	r, g, b := int(c.R)+int(other.R), int(c.G)+int(other.G), int(c.B)+int(other.B)
	if r > 255 {
		r = 255
	}
	if g > 255 {
		g = 255
	}
	if b > 255 {
		b = 255
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// Blend mixes c toward other by t in [0,1].
func (c RGB) Blend(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return RGB{
		uint8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		uint8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		uint8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}
