// Package harmony detects geometric hue relationships in a palette and
// scores how well the palette hangs together.
package harmony

import "github.com/colorcraft/colorcraft/internal/colour"

// Saturation and lightness thresholds for descriptive tags, in percent.
const (
	highSaturationAvg = 70.0
	lowSaturationAvg  = 30.0
	highContrastRange = 60
	lowContrastRange  = 20
)

// buildTags generates the human-readable tag list. Tags are a pure
// function of which detections fired and of the palette metrics, so the
// same palette always produces the same tags in the same order.
func buildTags(p *colour.Palette, a *Analysis) []string {
	var tags []string

	if len(a.Complementary) > 0 {
		tags = append(tags, "Complementary Harmony Detected")
	}
	if len(a.Triadic) > 0 {
		tags = append(tags, "Triadic Harmony Detected")
	}
	if len(a.Tetradic) > 0 {
		tags = append(tags, "Tetradic Harmony Detected")
	}
	if len(a.Analogous) > 0 {
		tags = append(tags, "Analogous Colors Present")
	}
	if len(a.SplitComplementary) > 0 {
		tags = append(tags, "Split-Complementary Scheme")
	}
	if a.Monochromatic {
		tags = append(tags, "Monochromatic Palette")
	}

	switch a.Temperature.Balance {
	case BalanceWarm:
		tags = append(tags, "Warm Color Palette")
	case BalanceCool:
		tags = append(tags, "Cool Color Palette")
	default:
		tags = append(tags, "Balanced Temperature")
	}

	switch {
	case a.Metrics.SaturationAvg > highSaturationAvg:
		tags = append(tags, "High Saturation")
	case a.Metrics.SaturationAvg < lowSaturationAvg:
		tags = append(tags, "Low Saturation")
	default:
		tags = append(tags, "Balanced Saturation")
	}

	if a.Metrics.LightnessRange > highContrastRange {
		tags = append(tags, "High Contrast")
	} else if a.Metrics.LightnessRange < lowContrastRange {
		tags = append(tags, "Low Contrast")
	}

	return tags
}
