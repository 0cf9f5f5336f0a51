// Package colour provides the colour value model and colour space
// conversions used by the analysis engine.
package colour

import (
	"encoding/json"
	"fmt"
)

// MinAnalysisColors is the smallest palette the harmony and
// accessibility analysers accept.
const MinAnalysisColors = 2

// Palette is an ordered sequence of colours. Order is insertion order
// and is meaningful: harmony results reference colours by index.
type Palette struct {
	Colors []Colour
}

// NewPalette creates a Palette with the given colours.
func NewPalette(colors []Colour) *Palette {
	return &Palette{Colors: colors}
}

// ParsePalette builds a Palette from hex colour strings, preserving
// order.
func ParsePalette(hexes []string) (*Palette, error) {
	colors := make([]Colour, 0, len(hexes))
	for _, h := range hexes {
		c, err := FromHex(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return NewPalette(colors), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (Colour, error) {
	if index < 0 || index >= len(p.Colors) {
		return Colour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// Hues returns the HSL hue angle of every colour, in palette order.
func (p *Palette) Hues() []float64 {
	hues := make([]float64, len(p.Colors))
	for i, c := range p.Colors {
		hues[i] = float64(c.HSL.H)
	}
	return hues
}

// ToHex returns the palette as hex colour codes, in palette order.
func (p *Palette) ToHex() []string {
	hexes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexes[i] = c.Hex
	}
	return hexes
}

// RequireAnalysable checks that the palette is large enough for
// pairwise analysis.
func (p *Palette) RequireAnalysable() error {
	if len(p.Colors) < MinAnalysisColors {
		return fmt.Errorf("%w: analysis needs at least %d colours, got %d",
			ErrInsufficientColors, MinAnalysisColors, len(p.Colors))
	}
	return nil
}

// paletteJSON is the wire shape of a palette.
type paletteJSON struct {
	Count  int      `json:"count"`
	Colors []Colour `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(paletteJSON{
		Count:  len(p.Colors),
		Colors: p.Colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}
	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex, c.RGB)
	}
	return result
}
