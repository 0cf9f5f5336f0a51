// Package harmony detects geometric hue relationships in a palette and
// scores how well the palette hangs together.
package harmony

// Hue bands for temperature classification, in degrees. Warm covers red
// through yellow plus the magenta wrap; cool covers green through blue;
// the yellow-green gap in between is neutral.
const (
	WarmBandMax  = 60.0
	CoolBandMin  = 120.0
	CoolBandMax  = 300.0
	WarmWrapMin  = 300.0
	WarmWrapMax  = 360.0
	warmDominant = 0.7
	coolDominant = 0.7
)

// Balance labels for Temperature.Balance.
const (
	BalanceWarm     = "warm"
	BalanceCool     = "cool"
	BalanceNeutral  = "neutral"
	BalanceBalanced = "balanced"
)

// Temperature summarises the warm/cool composition of a palette.
type Temperature struct {
	Balance   string  `json:"balance"`
	WarmCount int     `json:"warm_count"`
	CoolCount int     `json:"cool_count"`
	WarmRatio float64 `json:"warm_ratio"`
	CoolRatio float64 `json:"cool_ratio"`
}

// isWarm classifies a hue as warm. The 300° boundary belongs to warm.
func isWarm(hue float64) bool {
	return (hue >= 0 && hue <= WarmBandMax) || (hue >= WarmWrapMin && hue <= WarmWrapMax)
}

// isCool classifies a hue as cool.
func isCool(hue float64) bool {
	return hue >= CoolBandMin && hue <= CoolBandMax
}

// analyzeTemperature counts warm and cool hues and labels the overall
// balance. A palette with no warm or cool hues at all is neutral.
func analyzeTemperature(hues []float64) Temperature {
	t := Temperature{}
	for _, h := range hues {
		switch {
		case isWarm(h):
			t.WarmCount++
		case isCool(h):
			t.CoolCount++
		}
	}

	if t.WarmCount+t.CoolCount == 0 {
		t.Balance = BalanceNeutral
		return t
	}

	n := float64(len(hues))
	t.WarmRatio = round2(float64(t.WarmCount) / n)
	t.CoolRatio = round2(float64(t.CoolCount) / n)

	switch {
	case t.WarmRatio > warmDominant:
		t.Balance = BalanceWarm
	case t.CoolRatio > coolDominant:
		t.Balance = BalanceCool
	default:
		t.Balance = BalanceBalanced
	}
	return t
}
