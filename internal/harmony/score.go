// Package harmony detects geometric hue relationships in a palette and
// scores how well the palette hangs together.
package harmony

import "github.com/colorcraft/colorcraft/internal/colour"

// Scoring constants. The score is a tuned heuristic, not a calibrated
// model of perceived quality; these values exist to be revisited
// without touching detection logic.
const (
	BaseScore = 50

	ComplementaryBonus = 15
	TriadicBonus       = 20
	TetradicBonus      = 20
	AnalogousBonus     = 10
	SplitBonus         = 15
	MonochromaticBonus = 10

	// ConsistencyBonus applies when saturation standard deviation is
	// below SaturationStdMax.
	ConsistencyBonus = 5
	SaturationStdMax = 15.0

	// ContrastBonus applies when lightness standard deviation sits in
	// the open interval (LightnessStdMin, LightnessStdMax).
	ContrastBonus   = 5
	LightnessStdMin = 15.0
	LightnessStdMax = 30.0

	// NoHarmonyPenalty applies when a palette has more than
	// ManyColorsThreshold colours and no detected harmony of any type.
	NoHarmonyPenalty    = 10
	ManyColorsThreshold = 5

	MinScore = 0
	MaxScore = 100
)

// calculateScore derives the 0-100 harmony score. Harmony bonuses are
// independent and cumulative across types.
func calculateScore(p *colour.Palette, a *Analysis) int {
	score := BaseScore

	if len(a.Complementary) > 0 {
		score += ComplementaryBonus
	}
	if len(a.Triadic) > 0 {
		score += TriadicBonus
	}
	if len(a.Tetradic) > 0 {
		score += TetradicBonus
	}
	if len(a.Analogous) > 0 {
		score += AnalogousBonus
	}
	if len(a.SplitComplementary) > 0 {
		score += SplitBonus
	}
	if a.Monochromatic {
		score += MonochromaticBonus
	}

	saturations := make([]float64, p.Len())
	lightnesses := make([]float64, p.Len())
	for i, c := range p.Colors {
		saturations[i] = float64(c.HSL.S)
		lightnesses[i] = float64(c.HSL.L)
	}

	if stdDev(saturations) < SaturationStdMax {
		score += ConsistencyBonus
	}
	if ls := stdDev(lightnesses); ls > LightnessStdMin && ls < LightnessStdMax {
		score += ContrastBonus
	}

	if p.Len() > ManyColorsThreshold && !anyHarmony(a) {
		score -= NoHarmonyPenalty
	}

	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func anyHarmony(a *Analysis) bool {
	return len(a.Complementary) > 0 ||
		len(a.Analogous) > 0 ||
		len(a.Triadic) > 0 ||
		len(a.Tetradic) > 0 ||
		len(a.SplitComplementary) > 0 ||
		a.Monochromatic
}
