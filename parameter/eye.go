package parameter

// Virtual canvas dimensions. The engine animates in this coordinate
// space; renderers map it onto whatever surface they draw.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Eye size constraints and defaults (virtual pixels)
const (
	MinEyeSize = 20
	MaxEyeSize = 600

	DefaultEyeWidth   = 300
	DefaultEyeHeight  = 300
	DefaultEyeSpacing = 40
)

// Movement
const (
	// MoveAmount is one movement unit per axis; directional offsets
	// are ±MoveAmount combinations
	MoveAmount = 60

	// MovementVariation is per-axis jitter applied to each offset,
	// uniform in ±20%
	MovementVariation = 0.2

	// MaxRecentHistory bounds the movement history queue
	MaxRecentHistory = 10
)
