package parameter

// Glow
const (
	MinGlowRadius     = 5
	MaxGlowRadius     = 50
	DefaultGlowRadius = 20

	MinGlowIntensity     = 0
	MaxGlowIntensity     = 255
	DefaultGlowIntensity = 128
)

// Border
const (
	MinBorderThickness     = 1
	MaxBorderThickness     = 20
	DefaultBorderThickness = 4
)

// Directional size variation: the eye on the looked-at side grows by
// this fraction
const (
	MinSizeVariation     = 0.0
	MaxSizeVariation     = 0.5
	DefaultSizeVariation = 0.2
)

// Adjustment step sizes used by the drivers
const (
	GlowChangeAmount      = 5
	BorderChangeAmount    = 1
	SizeChangeAmount      = 50
	IntensityChangeAmount = 25
	VariationChangeAmount = 0.05
)
