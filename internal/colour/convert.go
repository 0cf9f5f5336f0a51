// Package colour provides the colour value model and colour space
// conversions used by the analysis engine.
package colour

import "math"

// RGBToHSL converts 8-bit RGB to integer HSL.
// When max==min the colour is achromatic and hue and saturation are 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100))}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	hue := int(math.Round(h)) % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts integer HSL back to 8-bit RGB.
func HSLToRGB(hsl HSL) RGB {
	h := float64(normaliseHue(hsl.H)) / 360.0
	s := float64(hsl.S) / 100.0
	l := float64(hsl.L) / 100.0

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3.0)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3.0)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion. t is in turns.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// SRGBToLinear gamma-decodes a normalised sRGB channel value using the
// piecewise sRGB curve.
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB gamma-encodes a normalised linear channel value back to
// sRGB.
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// Lab is a colour in CIE LAB (D65 reference white). It only exists
// inside conversion and clustering and is never part of the wire model.
type Lab struct {
	L float64
	A float64
	B float64
}

// sRGB primary matrix (D65) and its inverse.
var (
	rgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// D65 reference white.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// RGBToLab converts 8-bit RGB to CIE LAB via linear RGB and CIE XYZ.
func RGBToLab(rgb RGB) Lab {
	r := SRGBToLinear(float64(rgb.R) / 255.0)
	g := SRGBToLinear(float64(rgb.G) / 255.0)
	b := SRGBToLinear(float64(rgb.B) / 255.0)

	x := (rgbToXYZ[0][0]*r + rgbToXYZ[0][1]*g + rgbToXYZ[0][2]*b) * 100
	y := (rgbToXYZ[1][0]*r + rgbToXYZ[1][1]*g + rgbToXYZ[1][2]*b) * 100
	z := (rgbToXYZ[2][0]*r + rgbToXYZ[2][1]*g + rgbToXYZ[2][2]*b) * 100

	fx := labForward(x / whiteX)
	fy := labForward(y / whiteY)
	fz := labForward(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB converts CIE LAB back to 8-bit RGB. Channels are clipped to
// [0, 255]; LAB values produced by clustering can sit slightly outside
// the sRGB gamut.
func LabToRGB(lab Lab) RGB {
	fy := (lab.L + 16) / 116
	fx := lab.A/500 + fy
	fz := fy - lab.B/200

	x := labInverse(fx) * whiteX / 100
	y := labInverse(fy) * whiteY / 100
	z := labInverse(fz) * whiteZ / 100

	r := xyzToRGB[0][0]*x + xyzToRGB[0][1]*y + xyzToRGB[0][2]*z
	g := xyzToRGB[1][0]*x + xyzToRGB[1][1]*y + xyzToRGB[1][2]*z
	b := xyzToRGB[2][0]*x + xyzToRGB[2][1]*y + xyzToRGB[2][2]*z

	return RGB{
		R: clampChannel(LinearToSRGB(r) * 255),
		G: clampChannel(LinearToSRGB(g) * 255),
		B: clampChannel(LinearToSRGB(b) * 255),
	}
}

const labDelta = 6.0 / 29.0

func labForward(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labInverse(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
