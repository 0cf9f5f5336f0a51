// Package harmony detects geometric hue relationships in a palette and
// scores how well the palette hangs together.
package harmony

import (
	"math"

	"github.com/colorcraft/colorcraft/internal/colour"
)

// Detection tolerance windows, in degrees. All windows are inclusive.
const (
	ComplementaryTarget    = 180.0
	ComplementaryTolerance = 30.0

	// Analogous is an exact band with no extra tolerance beyond its
	// edges.
	AnalogousMin = 30.0
	AnalogousMax = 60.0

	TriadicTarget    = 120.0
	TriadicTolerance = 30.0

	TetradicTarget    = 90.0
	TetradicTolerance = 30.0

	// Split-complementary accepts hues this far from the exact
	// complement of the base.
	SplitMinOffset = 20.0
	SplitMaxOffset = 40.0

	// Monochromatic palettes keep all hues within this window and show
	// at least MonoVariation points of saturation or lightness spread.
	MonoHueTolerance = 15.0
	MonoVariation    = 10
)

// Pair, Triple and Quad reference palette colours by index.
type (
	Pair   [2]int
	Triple [3]int
	Quad   [4]int
)

// Analysis is the full harmony report for one palette. It is recomputed
// from scratch on every call.
type Analysis struct {
	Complementary      []Pair      `json:"complementary"`
	Analogous          []Pair      `json:"analogous"`
	Triadic            []Triple    `json:"triadic"`
	Tetradic           []Quad      `json:"tetradic"`
	SplitComplementary []Triple    `json:"split_complementary"`
	Monochromatic      bool        `json:"monochromatic"`
	Temperature        Temperature `json:"temperature_balance"`
	Score              int         `json:"score"`
	Tags               []string    `json:"tags"`
	Metrics            Metrics     `json:"metrics"`
}

// Metrics are the numeric palette summaries reported alongside the
// detections.
type Metrics struct {
	// HueDiversity is the circular standard deviation of the hues, in
	// degrees.
	HueDiversity float64 `json:"hue_diversity"`

	// SaturationAvg is the mean saturation percentage.
	SaturationAvg float64 `json:"saturation_avg"`

	// LightnessRange is max lightness minus min lightness.
	LightnessRange int `json:"lightness_range"`
}

// Analyze computes the harmony analysis for a palette of at least two
// colours. Every harmony a palette satisfies is reported; detections
// never short-circuit one another.
func Analyze(p *colour.Palette) (*Analysis, error) {
	if err := p.RequireAnalysable(); err != nil {
		return nil, err
	}

	hues := p.Hues()

	a := &Analysis{
		Complementary:      detectComplementary(hues),
		Analogous:          detectAnalogous(hues),
		Triadic:            detectTriadic(hues),
		Tetradic:           detectTetradic(hues),
		SplitComplementary: detectSplitComplementary(hues),
		Monochromatic:      detectMonochromatic(p),
		Temperature:        analyzeTemperature(hues),
		Metrics:            computeMetrics(p, hues),
	}
	a.Score = calculateScore(p, a)
	a.Tags = buildTags(p, a)
	return a, nil
}

// HueDistance is the circular angular distance between two hues:
// min(|h1-h2|, 360-|h1-h2|).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// NormalizeHue wraps a hue angle into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// detectComplementary reports every unordered pair roughly 180° apart.
func detectComplementary(hues []float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			if math.Abs(HueDistance(hues[i], hues[j])-ComplementaryTarget) <= ComplementaryTolerance {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}

// detectAnalogous reports pairs inside the 30-60° adjacency band.
func detectAnalogous(hues []float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			d := HueDistance(hues[i], hues[j])
			if d >= AnalogousMin && d <= AnalogousMax {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}

// detectTriadic reports triples whose three pairwise distances are all
// roughly 120°.
func detectTriadic(hues []float64) []Triple {
	var triads []Triple
	n := len(hues)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				d12 := HueDistance(hues[i], hues[j])
				d23 := HueDistance(hues[j], hues[k])
				d31 := HueDistance(hues[k], hues[i])
				if math.Abs(d12-TriadicTarget) <= TriadicTolerance &&
					math.Abs(d23-TriadicTarget) <= TriadicTolerance &&
					math.Abs(d31-TriadicTarget) <= TriadicTolerance {
					triads = append(triads, Triple{i, j, k})
				}
			}
		}
	}
	return triads
}

// detectTetradic reports quads whose hues, walked around the wheel in
// sorted order, sit roughly 90° apart at every step of the 4-cycle.
func detectTetradic(hues []float64) []Quad {
	var tetrads []Quad
	n := len(hues)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					sorted := []float64{hues[i], hues[j], hues[k], hues[l]}
					sortFloats(sorted)
					if isSquare(sorted) {
						tetrads = append(tetrads, Quad{i, j, k, l})
					}
				}
			}
		}
	}
	return tetrads
}

func isSquare(sorted []float64) bool {
	for step := 0; step < 4; step++ {
		d := HueDistance(sorted[step], sorted[(step+1)%4])
		if math.Abs(d-TetradicTarget) > TetradicTolerance {
			return false
		}
	}
	return true
}

// detectSplitComplementary reports groups of a base colour plus two
// colours flanking its complement (20-40° away from the exact
// complement).
func detectSplitComplementary(hues []float64) []Triple {
	var groups []Triple
	for i, base := range hues {
		complement := NormalizeHue(base + 180)

		var splits []int
		for j, h := range hues {
			if i == j {
				continue
			}
			d := HueDistance(h, complement)
			if d >= SplitMinOffset && d <= SplitMaxOffset {
				splits = append(splits, j)
			}
		}

		if len(splits) >= 2 {
			groups = append(groups, Triple{i, splits[0], splits[1]})
		}
	}
	return groups
}

// detectMonochromatic reports whether all hues sit within the
// monochromatic window of the first colour while saturation or
// lightness actually varies. Identical colours are not a scheme.
func detectMonochromatic(p *colour.Palette) bool {
	if p.Len() < colour.MinAnalysisColors {
		return false
	}

	base := float64(p.Colors[0].HSL.H)
	for _, c := range p.Colors[1:] {
		if HueDistance(base, float64(c.HSL.H)) > MonoHueTolerance {
			return false
		}
	}

	minS, maxS := p.Colors[0].HSL.S, p.Colors[0].HSL.S
	minL, maxL := p.Colors[0].HSL.L, p.Colors[0].HSL.L
	for _, c := range p.Colors[1:] {
		minS = min(minS, c.HSL.S)
		maxS = max(maxS, c.HSL.S)
		minL = min(minL, c.HSL.L)
		maxL = max(maxL, c.HSL.L)
	}

	return maxS-minS > MonoVariation || maxL-minL > MonoVariation
}

// computeMetrics derives the numeric palette summaries.
func computeMetrics(p *colour.Palette, hues []float64) Metrics {
	saturations := make([]float64, p.Len())
	minL, maxL := p.Colors[0].HSL.L, p.Colors[0].HSL.L
	for i, c := range p.Colors {
		saturations[i] = float64(c.HSL.S)
		minL = min(minL, c.HSL.L)
		maxL = max(maxL, c.HSL.L)
	}

	return Metrics{
		HueDiversity:   round2(circularStdDev(hues)),
		SaturationAvg:  round2(mean(saturations)),
		LightnessRange: maxL - minL,
	}
}

// circularStdDev is the circular standard deviation of angles in
// degrees, which treats 359° and 1° as close rather than far apart.
func circularStdDev(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	var sinSum, cosSum float64
	for _, d := range degrees {
		rad := d * math.Pi / 180
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	n := float64(len(degrees))
	r := math.Hypot(sinSum/n, cosSum/n)
	if r >= 1 {
		return 0
	}
	return math.Sqrt(-2*math.Log(r)) * 180 / math.Pi
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortFloats(values []float64) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}
