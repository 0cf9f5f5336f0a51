package colour

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#1a2b3c")
	if err != nil {
		t.Fatalf("FromHex() error = %v", err)
	}
	if c.Hex != "#1a2b3c" {
		t.Errorf("Hex = %s, want #1a2b3c", c.Hex)
	}
	if c.RGB != (RGB{26, 43, 60}) {
		t.Errorf("RGB = %+v, want {26 43 60}", c.RGB)
	}
	if c.HSL != RGBToHSL(c.RGB) {
		t.Errorf("HSL = %+v does not agree with RGB", c.HSL)
	}
}

func TestFromHexInvalid(t *testing.T) {
	_, err := FromHex("not-a-colour")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("FromHex() error = %v, want ErrInvalidFormat", err)
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		hsl     HSL
		wantErr bool
	}{
		{name: "valid", hsl: HSL{H: 200, S: 60, L: 40}},
		{name: "hue wraps", hsl: HSL{H: 380, S: 60, L: 40}},
		{name: "negative hue wraps", hsl: HSL{H: -20, S: 60, L: 40}},
		{name: "saturation out of range", hsl: HSL{H: 0, S: 120, L: 40}, wantErr: true},
		{name: "lightness out of range", hsl: HSL{H: 0, S: 50, L: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromHSL(tt.hsl)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHSL(%+v) error = %v, wantErr %v", tt.hsl, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if c.HSL.H < 0 || c.HSL.H > 359 {
				t.Errorf("hue %d not normalised", c.HSL.H)
			}
		})
	}
}

func TestColourWireShape(t *testing.T) {
	c := FromRGB(RGB{255, 0, 0})
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"hex":"#ff0000","rgb":{"r":255,"g":0,"b":0},"hsl":{"h":0,"s":100,"l":50}}`
	if string(data) != want {
		t.Errorf("wire shape = %s, want %s", data, want)
	}
}

func TestColourValidate(t *testing.T) {
	good := FromRGB(RGB{10, 200, 30})
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() on constructed colour = %v", err)
	}

	bad := Colour{
		Hex: "#ff0000",
		RGB: RGB{0, 0, 255},
		HSL: HSL{H: 240, S: 100, L: 50},
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Validate() on disagreeing colour = %v, want ErrInvalidFormat", err)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "#00ffff"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	// Insertion order is identity.
	if p.Colors[0].Hex != "#ff0000" || p.Colors[1].Hex != "#00ffff" {
		t.Errorf("palette order changed: %v", p.ToHex())
	}

	if _, err := ParsePalette([]string{"#ff0000", "bogus"}); err == nil {
		t.Error("ParsePalette() accepted an invalid colour")
	}
}

func TestRequireAnalysable(t *testing.T) {
	one, _ := ParsePalette([]string{"#ff0000"})
	if err := one.RequireAnalysable(); !errors.Is(err, ErrInsufficientColors) {
		t.Errorf("single colour palette error = %v, want ErrInsufficientColors", err)
	}

	two, _ := ParsePalette([]string{"#ff0000", "#00ffff"})
	if err := two.RequireAnalysable(); err != nil {
		t.Errorf("two colour palette error = %v", err)
	}
}
