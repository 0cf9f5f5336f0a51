// Package wcag computes WCAG 2.1 relative luminance, contrast ratios
// and compliance ratings for palette colour pairs.
package wcag

import (
	"fmt"
	"math"

	"github.com/colorcraft/colorcraft/internal/colour"
)

// WCAG compliance thresholds.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// Relative luminance channel weights.
const (
	lumRed   = 0.2126
	lumGreen = 0.7152
	lumBlue  = 0.0722
)

// Luminance returns the WCAG relative luminance of a colour, between 0
// (darkest) and 1 (lightest). Channels are gamma-decoded to linear
// light before weighting.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(rgb colour.RGB) float64 {
	r := colour.SRGBToLinear(float64(rgb.R) / 255.0)
	g := colour.SRGBToLinear(float64(rgb.G) / 255.0)
	b := colour.SRGBToLinear(float64(rgb.B) / 255.0)
	return lumRed*r + lumGreen*g + lumBlue*b
}

// ContrastRatio returns the WCAG contrast ratio between two colours,
// between 1 (identical) and 21 (black against white). The ratio is
// symmetric in its arguments.
func ContrastRatio(c1, c2 colour.RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Rating holds the compliance flags for one contrast ratio.
type Rating struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// Rate converts a raw contrast ratio into compliance flags. The ratio
// is rounded to two decimals for reporting.
func Rate(ratio float64) Rating {
	return Rating{
		Ratio:     math.Round(ratio*100) / 100,
		AANormal:  ratio >= AANormalThreshold,
		AALarge:   ratio >= AALargeThreshold,
		AAANormal: ratio >= AAANormalThreshold,
		AAALarge:  ratio >= AAALargeThreshold,
	}
}

// Pair is the contrast report for one unordered palette colour pair.
// Color1 always carries the lower palette index.
type Pair struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Rating
}

// Issue flags a pair whose contrast falls below the AA-normal
// threshold.
type Issue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Summary aggregates the pairwise results.
type Summary struct {
	TotalPairs   int `json:"total_pairs"`
	AACompliant  int `json:"aa_compliant"`
	AAACompliant int `json:"aaa_compliant"`
}

// Analysis is the full accessibility report for a palette: every
// unordered pair evaluated exactly once, in palette index order.
type Analysis struct {
	Pairs   []Pair  `json:"pairs"`
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

// Analyze evaluates all C(n,2) colour pairs of the palette. It needs at
// least two colours to produce any pairs.
func Analyze(p *colour.Palette) (*Analysis, error) {
	if err := p.RequireAnalysable(); err != nil {
		return nil, err
	}

	result := &Analysis{
		Pairs:  make([]Pair, 0, p.Len()*(p.Len()-1)/2),
		Issues: []Issue{},
	}

	for i := 0; i < p.Len(); i++ {
		for j := i + 1; j < p.Len(); j++ {
			c1, c2 := p.Colors[i], p.Colors[j]
			rating := Rate(ContrastRatio(c1.RGB, c2.RGB))

			result.Pairs = append(result.Pairs, Pair{
				Color1: c1.Hex,
				Color2: c2.Hex,
				Rating: rating,
			})

			result.Summary.TotalPairs++
			if rating.AANormal {
				result.Summary.AACompliant++
			}
			if rating.AAANormal {
				result.Summary.AAACompliant++
			}

			if !rating.AANormal {
				result.Issues = append(result.Issues, Issue{
					Type: "low_contrast",
					Message: fmt.Sprintf("Low contrast detected between %s and %s (ratio: %.2f)",
						c1.Hex, c2.Hex, rating.Ratio),
					Severity: "warning",
				})
			}
		}
	}

	return result, nil
}
