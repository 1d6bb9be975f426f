package visual

import (
	"github.com/lixenwraith/robo-eyes/terminal"
)

// Scheme selects one of the fixed eye color schemes
type Scheme uint8

const (
	SchemeCyber   Scheme = iota // blue-green holographic
	SchemeNeon                  // teal cyberpunk
	SchemeAmber                 // classic amber
	SchemePlasma                // purple energy
	SchemeIce                   // ice white
	SchemeEnergy                // power green
	SchemeBlood                 // blood red
	SchemeVoid                  // dark void
	SchemeInferno               // hellfire orange

	SchemeCount = 9
)

// Colors is the three-color palette of one scheme
type Colors struct {
	Primary   terminal.RGB
	Secondary terminal.RGB
	Glow      terminal.RGB
}

var schemeNames = [SchemeCount]string{
	"cyber", "neon", "amber", "plasma", "ice", "energy", "blood", "void", "inferno",
}

func (s Scheme) String() string {
	if int(s) >= SchemeCount {
		return "unknown"
	}
	return schemeNames[s]
}

// Next returns the following scheme in declaration order, wrapping
func (s Scheme) Next() Scheme {
	return (s + 1) % SchemeCount
}

// schemeColors maps each scheme to its fixed palette.
// Secondary is a darker shade used for the border ring, glow is the
// halo tint.
var schemeColors = [SchemeCount]Colors{
	SchemeCyber: {
		Primary:   terminal.RGB{R: 0, G: 180, B: 255}, // electric blue
		Secondary: terminal.RGB{R: 0, G: 140, B: 200},
		Glow:      terminal.RGB{R: 100, G: 200, B: 255},
	},
	SchemeNeon: {
		Primary:   terminal.RGB{R: 0, G: 255, B: 200}, // cyberpunk teal
		Secondary: terminal.RGB{R: 0, G: 200, B: 160},
		Glow:      terminal.RGB{R: 100, G: 255, B: 220},
	},
	SchemeAmber: {
		Primary:   terminal.RGB{R: 255, G: 160, B: 0}, // classic amber
		Secondary: terminal.RGB{R: 200, G: 120, B: 0},
		Glow:      terminal.RGB{R: 255, G: 200, B: 100},
	},
	SchemePlasma: {
		Primary:   terminal.RGB{R: 147, G: 51, B: 255}, // deep purple
		Secondary: terminal.RGB{R: 106, G: 27, B: 224},
		Glow:      terminal.RGB{R: 180, G: 120, B: 255},
	},
	SchemeIce: {
		Primary:   terminal.RGB{R: 220, G: 240, B: 255}, // ice white, blue tint
		Secondary: terminal.RGB{R: 180, G: 220, B: 255},
		Glow:      terminal.RGB{R: 200, G: 230, B: 255},
	},
	SchemeEnergy: {
		Primary:   terminal.RGB{R: 50, G: 255, B: 50}, // energy green
		Secondary: terminal.RGB{R: 30, G: 200, B: 30},
		Glow:      terminal.RGB{R: 150, G: 255, B: 150},
	},
	SchemeBlood: {
		Primary:   terminal.RGB{R: 255, G: 0, B: 0}, // pure red
		Secondary: terminal.RGB{R: 180, G: 0, B: 0},
		Glow:      terminal.RGB{R: 255, G: 30, B: 30},
	},
	SchemeVoid: {
		Primary:   terminal.RGB{R: 100, G: 0, B: 200}, // deep violet
		Secondary: terminal.RGB{R: 60, G: 0, B: 120},
		Glow:      terminal.RGB{R: 140, G: 0, B: 255},
	},
	SchemeInferno: {
		Primary:   terminal.RGB{R: 255, G: 60, B: 0}, // bright orange-red
		Secondary: terminal.RGB{R: 200, G: 30, B: 0},
		Glow:      terminal.RGB{R: 255, G: 100, B: 0},
	},
}

// Colors returns the palette for s.
func (s Scheme) Colors() Colors {
	if int(s) >= SchemeCount {
		return schemeColors[SchemeCyber]
	}
	return schemeColors[s]
}
