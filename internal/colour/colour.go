// Package colour provides the colour value model and colour space
// conversions used by the analysis engine.
package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned when a hex, RGB or HSL input cannot be
// parsed or is outside its documented range.
var ErrInvalidFormat = errors.New("invalid colour format")

// ErrInsufficientColors is returned when an operation needs more colours
// than the caller supplied.
var ErrInsufficientColors = errors.New("insufficient colours")

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in the HSL cylinder.
// Hue is in integer degrees (0-359), saturation and lightness are
// integer percentages (0-100).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Colour is an immutable colour value carrying three agreeing
// representations. The representations are always derived together;
// changing one means constructing a new Colour.
type Colour struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// FromRGB constructs a Colour from 8-bit RGB channels.
func FromRGB(rgb RGB) Colour {
	return Colour{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}

// FromHex constructs a Colour from a 6-digit hex string.
// A leading '#' is optional and letter case is ignored.
func FromHex(hex string) (Colour, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Colour{}, err
	}
	return FromRGB(rgb), nil
}

// FromHSL constructs a Colour from HSL components. The hue wraps modulo
// 360; saturation and lightness outside 0-100 are rejected.
func FromHSL(hsl HSL) (Colour, error) {
	if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
		return Colour{}, fmt.Errorf("%w: saturation and lightness must be 0-100, got s=%d l=%d",
			ErrInvalidFormat, hsl.S, hsl.L)
	}
	hsl.H = normaliseHue(hsl.H)
	rgb := HSLToRGB(hsl)
	return Colour{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: hsl,
	}, nil
}

// Validate checks that the three representations of a Colour agree to
// within rounding. Used on colours arriving over the wire, where the
// caller may have assembled the representations independently.
func (c Colour) Validate() error {
	rgb, err := HexToRGB(c.Hex)
	if err != nil {
		return err
	}
	if !channelsClose(rgb, c.RGB, 1) {
		return fmt.Errorf("%w: hex %s does not match rgb %s", ErrInvalidFormat, c.Hex, c.RGB)
	}
	want := RGBToHSL(c.RGB)
	if hueDelta(want.H, c.HSL.H) > 1 && c.HSL.S > 0 {
		return fmt.Errorf("%w: hsl hue %d does not match rgb %s (expected %d)",
			ErrInvalidFormat, c.HSL.H, c.RGB, want.H)
	}
	return nil
}

// HexToRGB parses a 6-digit hex colour string, with or without a
// leading '#'.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: expected 6 hex digits, got %q", ErrInvalidFormat, hex)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q is not a hex colour", ErrInvalidFormat, hex)
		}
		channels[i] = hi<<4 | lo
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func normaliseHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func channelsClose(a, b RGB, tol int) bool {
	return absInt(int(a.R)-int(b.R)) <= tol &&
		absInt(int(a.G)-int(b.G)) <= tol &&
		absInt(int(a.B)-int(b.B)) <= tol
}

func hueDelta(h1, h2 int) int {
	d := absInt(h1 - h2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
