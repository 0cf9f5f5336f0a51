// Package suggest proposes concrete harmony-based colour companions
// for a single base colour.
package suggest

import (
	"fmt"

	"github.com/colorcraft/colorcraft/internal/colour"
)

// Suggestion is one proposed colour plus its role inside the group.
type Suggestion struct {
	colour.Colour
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Group is a set of suggestions for one harmony relationship, with
// static descriptive metadata for presentation.
type Group struct {
	Type        string       `json:"type"`
	Angle       string       `json:"angle"`
	Description string       `json:"description"`
	UseCases    []string     `json:"use_cases"`
	Mood        string       `json:"mood"`
	Examples    string       `json:"examples"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Set holds all suggestion groups generated for one base colour.
type Set struct {
	BaseColor colour.Colour `json:"base_color"`
	Harmonies []Group       `json:"harmonies"`
}

// Generate produces every suggestion group for a base colour. The
// result depends only on the base colour; generating for each colour of
// a palette yields one independent Set per colour.
func Generate(base colour.Colour) Set {
	return Set{
		BaseColor: base,
		Harmonies: []Group{
			complementary(base),
			analogous(base),
			triadic(base),
			splitComplementary(base),
			tetradic(base),
			rectangular(base),
			monochromatic(base),
			doubleComplementary(base),
			shadesAndTints(base),
		},
	}
}

// ForPalette generates one suggestion Set per palette colour.
func ForPalette(p *colour.Palette) ([]Set, error) {
	if p.Len() < 1 {
		return nil, fmt.Errorf("%w: suggestions need at least one base colour",
			colour.ErrInsufficientColors)
	}
	sets := make([]Set, p.Len())
	for i, c := range p.Colors {
		sets[i] = Generate(c)
	}
	return sets, nil
}

// at builds a suggestion colour at the given HSL position. Saturation
// and lightness are clamped to 0-100, the hue wraps, so construction
// cannot fail.
func at(h, s, l int, name, description string) Suggestion {
	c, _ := colour.FromHSL(colour.HSL{H: h, S: clampPercent(s), L: clampPercent(l)})
	return Suggestion{Colour: c, Name: name, Description: description}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func clampMax(v, ceil int) int {
	if v > ceil {
		return ceil
	}
	return v
}

func complementary(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L
	comp := h + 180

	return Group{
		Type:        "Complementary",
		Angle:       "180°",
		Description: "Complementary colors sit opposite each other on the color wheel, creating maximum contrast and visual energy.",
		UseCases: []string{
			"Call-to-action buttons that need to stand out",
			"Highlighting important UI elements",
			"Creating vibrant, attention-grabbing designs",
			"Logos that need strong visual impact",
		},
		Mood:     "Energetic, bold, dynamic, attention-grabbing",
		Examples: "Red & Green, Blue & Orange, Yellow & Purple",
		Suggestions: []Suggestion{
			at(comp, s, l, "Direct Complement", "Exact opposite on the color wheel"),
			at(comp, clampMax(s+15, 100), clampMin(l-20, 20), "Rich Complement", "More saturated and darker for depth"),
			at(comp, clampMin(s-20, 30), clampMax(l+20, 90), "Soft Complement", "Lighter and less saturated for subtlety"),
		},
	}
}

func analogous(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	suggestions := make([]Suggestion, 0, 4)
	for _, offset := range []int{-60, -30, 30, 60} {
		side := "Right"
		if offset < 0 {
			side = "Left"
		}
		magnitude := offset
		if magnitude < 0 {
			magnitude = -magnitude
		}
		suggestions = append(suggestions, at(h+offset, s, l,
			fmt.Sprintf("Analogous %d° %s", magnitude, side),
			fmt.Sprintf("Adjacent color %d° away", magnitude)))
	}

	return Group{
		Type:        "Analogous",
		Angle:       "30-60°",
		Description: "Analogous colors sit next to each other on the color wheel, creating harmonious, cohesive palettes that feel natural and pleasing.",
		UseCases: []string{
			"Backgrounds and gradients",
			"Nature-inspired designs",
			"Calming, serene interfaces",
			"Photography and art portfolios",
		},
		Mood:        "Harmonious, serene, cohesive, natural",
		Examples:    "Blue-Blue/Green-Green, Red-Orange-Yellow",
		Suggestions: suggestions,
	}
}

func triadic(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	suggestions := make([]Suggestion, 0, 4)
	for _, offset := range []int{120, 240} {
		suggestions = append(suggestions,
			at(h+offset, s, l,
				fmt.Sprintf("Triadic Partner %d°", offset), "Equal spacing for balance"),
			at(h+offset, clampMax(s+10, 100), l,
				fmt.Sprintf("Vibrant Triadic %d°", offset), "Boosted saturation for impact"),
		)
	}

	return Group{
		Type:        "Triadic",
		Angle:       "120°",
		Description: "Triadic colors are evenly spaced around the color wheel, forming an equilateral triangle. This creates balanced, vibrant palettes.",
		UseCases: []string{
			"Playful, energetic designs",
			"Children's products and educational materials",
			"Brand identities that need to feel dynamic",
			"Infographics and data visualizations",
		},
		Mood:        "Balanced, vibrant, playful, harmonious",
		Examples:    "Red-Yellow-Blue (primary colors), Orange-Green-Purple (secondary colors)",
		Suggestions: suggestions,
	}
}

func splitComplementary(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L
	comp := h + 180

	suggestions := make([]Suggestion, 0, 4)
	for _, offset := range []int{-30, 30} {
		sign := "+30°"
		if offset < 0 {
			sign = "-30°"
		}
		suggestions = append(suggestions,
			at(comp+offset, s, l,
				"Split Complement "+sign, "Flanking the complement by 30°"),
			at(comp+offset, clampMin(s-15, 40), clampMax(l+15, 85),
				"Soft Split "+sign, "Muted variation for subtlety"),
		)
	}

	return Group{
		Type:        "Split-Complementary",
		Angle:       "150° & 210°",
		Description: "Split-complementary uses a base color and two colors adjacent to its complement, offering contrast with more nuance than pure complementary.",
		UseCases: []string{
			"Sophisticated brand palettes",
			"Web designs needing contrast without harshness",
			"Editorial layouts and magazines",
			"Product packaging with visual interest",
		},
		Mood:        "Sophisticated, balanced, nuanced, refined",
		Examples:    "Blue with Yellow-Orange and Red-Orange",
		Suggestions: suggestions,
	}
}

func tetradic(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	suggestions := make([]Suggestion, 0, 3)
	for _, offset := range []int{90, 180, 270} {
		suggestions = append(suggestions, at(h+offset, s, l,
			fmt.Sprintf("Tetradic %d°", offset),
			fmt.Sprintf("Square harmony partner at %d°", offset)))
	}

	return Group{
		Type:        "Tetradic (Square)",
		Angle:       "90°",
		Description: "Tetradic colors form a square on the color wheel, evenly spaced at 90° intervals. This creates rich, complex palettes with maximum variety.",
		UseCases: []string{
			"Complex brand systems with multiple sub-brands",
			"Data visualizations with many categories",
			"Festive, celebratory designs",
			"Gaming interfaces and entertainment",
		},
		Mood:        "Rich, complex, diverse, energetic",
		Examples:    "Red-Yellow-Green-Blue, Orange-Chartreuse-Cyan-Violet",
		Suggestions: suggestions,
	}
}

func rectangular(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	suggestions := make([]Suggestion, 0, 3)
	for _, offset := range []int{60, 180, 240} {
		suggestions = append(suggestions, at(h+offset, s, l,
			fmt.Sprintf("Rectangular %d°", offset),
			fmt.Sprintf("Rectangle harmony at %d°", offset)))
	}

	return Group{
		Type:        "Rectangular (Compound)",
		Angle:       "60° & 180°",
		Description: "Rectangular harmony uses two complementary pairs that form a rectangle on the color wheel, offering rich contrast with balance.",
		UseCases: []string{
			"Editorial designs with multiple sections",
			"Dashboard interfaces with distinct zones",
			"Marketing materials with varied content",
			"Presentation templates",
		},
		Mood:        "Balanced, sophisticated, varied, professional",
		Examples:    "Blue-Orange paired with Yellow-Violet",
		Suggestions: suggestions,
	}
}

func monochromatic(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	return Group{
		Type:        "Monochromatic",
		Angle:       "0° (same hue)",
		Description: "Monochromatic palettes use variations of a single hue with different saturation and lightness levels, creating cohesive, elegant designs.",
		UseCases: []string{
			"Minimalist, elegant interfaces",
			"Professional corporate designs",
			"Photography portfolios",
			"Luxury brand materials",
		},
		Mood:     "Cohesive, elegant, sophisticated, calm",
		Examples: "Navy-Blue-Sky Blue-Powder Blue, Forest-Sage-Mint Green",
		Suggestions: []Suggestion{
			at(h, clampMin(s-30, 10), clampMax(l+30, 95), "Lighter Tint", "Pastel variation for backgrounds"),
			at(h, clampMax(s+20, 100), clampMin(l-30, 15), "Darker Shade", "Rich, deep variation for text"),
			at(h, clampMin(s-25, 15), l, "Desaturated Tone", "Muted variation for sophistication"),
			at(h, clampMax(s+30, 100), l, "Vibrant Tone", "Boosted saturation for impact"),
		},
	}
}

func doubleComplementary(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L
	second := h + 30

	return Group{
		Type:        "Double-Complementary",
		Angle:       "Two 180° pairs",
		Description: "Double-complementary uses two pairs of complementary colors, creating rich, dynamic palettes with strong contrast.",
		UseCases: []string{
			"Bold, energetic brand identities",
			"Sports team colors and jerseys",
			"Festival and event materials",
			"Attention-grabbing advertisements",
		},
		Mood:     "Bold, energetic, dynamic, striking",
		Examples: "Red-Green paired with Blue-Orange",
		Suggestions: []Suggestion{
			at(second, s, l, "Second Base", "30° from original"),
			at(second+180, s, l, "Second Complement", "Complement of second base"),
			at(h+180, s, l, "Original Complement", "Complement of base color"),
		},
	}
}

func shadesAndTints(base colour.Colour) Group {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	return Group{
		Type:        "Shades & Tints",
		Angle:       "Same hue, varied lightness",
		Description: "Shades (darker) and tints (lighter) of the same color create depth, hierarchy, and visual interest while maintaining color identity.",
		UseCases: []string{
			"UI states (hover, active, disabled)",
			"Text hierarchy (headings, body, captions)",
			"Shadows and highlights",
			"Depth and layering in designs",
		},
		Mood:     "Structured, hierarchical, organized, clear",
		Examples: "Light Blue → Blue → Navy, Pink → Red → Maroon",
		Suggestions: []Suggestion{
			at(h, s, clampMax(l+15, 98), "Tint 1", "15% lighter"),
			at(h, s, clampMax(l+30, 98), "Tint 2", "30% lighter"),
			at(h, s, clampMin(l-15, 5), "Shade 1", "15% darker"),
			at(h, s, clampMin(l-30, 5), "Shade 2", "30% darker"),
		},
	}
}
