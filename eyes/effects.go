package eyes

import (
	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/parameter/visual"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// EffectsController holds the purely-scalar styling parameters.
// Nothing here animates on its own; values change only through the
// clamped adjustment commands, and out-of-range requests saturate
// silently.
type EffectsController struct {
	glowRadius      int
	glowIntensity   int
	borderThickness int
	scheme          visual.Scheme
	sizeVariation   float64
}

// NewEffectsController starts from the configured defaults on the
// cyber scheme.
func NewEffectsController() *EffectsController {
	return &EffectsController{
		glowRadius:      parameter.DefaultGlowRadius,
		glowIntensity:   parameter.DefaultGlowIntensity,
		borderThickness: parameter.DefaultBorderThickness,
		scheme:          visual.SchemeCyber,
		sizeVariation:   parameter.DefaultSizeVariation,
	}
}

// AdjustGlowRadius shifts the glow radius by change and returns the
// clamped result.
func (c *EffectsController) AdjustGlowRadius(change int) int {
	c.glowRadius = vmath.ClampInt(c.glowRadius+change, parameter.MinGlowRadius, parameter.MaxGlowRadius)
	return c.glowRadius
}

// AdjustGlowIntensity shifts the glow intensity by change and returns
// the clamped result.
func (c *EffectsController) AdjustGlowIntensity(change int) int {
	c.glowIntensity = vmath.ClampInt(c.glowIntensity+change, parameter.MinGlowIntensity, parameter.MaxGlowIntensity)
	return c.glowIntensity
}

// AdjustBorderThickness shifts the border thickness by change and
// returns the clamped result.
func (c *EffectsController) AdjustBorderThickness(change int) int {
	c.borderThickness = vmath.ClampInt(c.borderThickness+change, parameter.MinBorderThickness, parameter.MaxBorderThickness)
	return c.borderThickness
}

// AdjustSizeVariation shifts the directional size variation factor by
// change and returns the clamped result.
func (c *EffectsController) AdjustSizeVariation(change float64) float64 {
	c.sizeVariation = vmath.Clamp(c.sizeVariation+change, parameter.MinSizeVariation, parameter.MaxSizeVariation)
	return c.sizeVariation
}

// CycleScheme advances to the next color scheme in declaration order,
// wrapping after the last.
func (c *EffectsController) CycleScheme() visual.Scheme {
	c.scheme = c.scheme.Next()
	return c.scheme
}

// GlowRadius returns the current glow radius.
func (c *EffectsController) GlowRadius() int { return c.glowRadius }

// GlowIntensity returns the current glow intensity.
func (c *EffectsController) GlowIntensity() int { return c.glowIntensity }

// BorderThickness returns the current border thickness.
func (c *EffectsController) BorderThickness() int { return c.borderThickness }

// Scheme returns the active color scheme.
func (c *EffectsController) Scheme() visual.Scheme { return c.scheme }

// SizeVariation returns the directional size variation factor.
func (c *EffectsController) SizeVariation() float64 { return c.sizeVariation }
