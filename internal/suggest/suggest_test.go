package suggest

import (
	"errors"
	"testing"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/harmony"
)

func baseColour(t *testing.T, h, s, l int) colour.Colour {
	t.Helper()
	c, err := colour.FromHSL(colour.HSL{H: h, S: s, L: l})
	if err != nil {
		t.Fatalf("FromHSL(%d,%d,%d) error = %v", h, s, l, err)
	}
	return c
}

func TestGenerateGroupShape(t *testing.T) {
	set := Generate(baseColour(t, 210, 70, 50))

	if len(set.Harmonies) != 9 {
		t.Fatalf("Harmonies = %d groups, want 9", len(set.Harmonies))
	}

	for _, g := range set.Harmonies {
		if g.Type == "" || g.Angle == "" || g.Description == "" || g.Mood == "" {
			t.Errorf("group %q has empty metadata", g.Type)
		}
		if len(g.UseCases) == 0 {
			t.Errorf("group %q has no use cases", g.Type)
		}
		if len(g.Suggestions) < 1 || len(g.Suggestions) > 4 {
			t.Errorf("group %q has %d suggestions, want 1-4", g.Type, len(g.Suggestions))
		}
		for _, s := range g.Suggestions {
			if s.Name == "" {
				t.Errorf("group %q has an unnamed suggestion", g.Type)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("group %q suggestion %q: %v", g.Type, s.Name, err)
			}
		}
	}
}

func TestComplementarySuggestionHue(t *testing.T) {
	base := baseColour(t, 30, 80, 50)
	set := Generate(base)

	var comp *Group
	for i := range set.Harmonies {
		if set.Harmonies[i].Type == "Complementary" {
			comp = &set.Harmonies[i]
		}
	}
	if comp == nil {
		t.Fatal("no Complementary group generated")
	}

	direct := comp.Suggestions[0]
	if direct.HSL.H != 210 {
		t.Errorf("direct complement hue = %d, want 210", direct.HSL.H)
	}

	// The direct complement must register as complementary to the base.
	d := harmony.HueDistance(float64(base.HSL.H), float64(direct.HSL.H))
	if d != harmony.ComplementaryTarget {
		t.Errorf("hue distance = %v, want %v", d, harmony.ComplementaryTarget)
	}
}

func TestTriadicSuggestionHues(t *testing.T) {
	set := Generate(baseColour(t, 0, 80, 50))

	for _, g := range set.Harmonies {
		if g.Type != "Triadic" {
			continue
		}
		for _, s := range g.Suggestions {
			if s.HSL.H != 120 && s.HSL.H != 240 {
				t.Errorf("triadic suggestion hue = %d, want 120 or 240", s.HSL.H)
			}
		}
		return
	}
	t.Fatal("no Triadic group generated")
}

func TestHueWrapsAroundWheel(t *testing.T) {
	// Base near the top of the wheel: offsets must wrap into [0, 360).
	set := Generate(baseColour(t, 350, 80, 50))

	for _, g := range set.Harmonies {
		for _, s := range g.Suggestions {
			if s.HSL.H < 0 || s.HSL.H > 359 {
				t.Errorf("group %q suggestion %q hue %d not normalised", g.Type, s.Name, s.HSL.H)
			}
		}
	}
}

func TestSaturationLightnessClamped(t *testing.T) {
	// Extreme base values push the derived saturation/lightness past
	// their bounds; results must stay within 0-100.
	for _, base := range []colour.Colour{
		baseColour(t, 120, 100, 95),
		baseColour(t, 120, 5, 5),
	} {
		set := Generate(base)
		for _, g := range set.Harmonies {
			for _, s := range g.Suggestions {
				if s.HSL.S < 0 || s.HSL.S > 100 || s.HSL.L < 0 || s.HSL.L > 100 {
					t.Errorf("group %q suggestion %q out of range: %+v", g.Type, s.Name, s.HSL)
				}
			}
		}
	}
}

func TestForPalette(t *testing.T) {
	p, err := colour.ParsePalette([]string{"#ff0000", "#00ff00", "#0000ff"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}

	sets, err := ForPalette(p)
	if err != nil {
		t.Fatalf("ForPalette() error = %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("ForPalette() = %d sets, want 3", len(sets))
	}
	for i, set := range sets {
		if set.BaseColor.Hex != p.Colors[i].Hex {
			t.Errorf("set %d base = %s, want %s", i, set.BaseColor.Hex, p.Colors[i].Hex)
		}
	}
}

func TestForPaletteEmpty(t *testing.T) {
	_, err := ForPalette(colour.NewPalette(nil))
	if !errors.Is(err, colour.ErrInsufficientColors) {
		t.Errorf("ForPalette(empty) error = %v, want ErrInsufficientColors", err)
	}
}
