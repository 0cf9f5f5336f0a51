// Package image loads images and prepares bounded pixel samples for
// palette extraction.
package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/colorcraft/colorcraft/internal/colour"
)

const (
	// MaxDimension bounds the longer image edge before sampling.
	MaxDimension = 400

	// MaxSamples bounds the number of pixels handed to the extractor.
	MaxSamples = 10000
)

// Resize scales the image down so its longer edge is at most maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func Resize(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	longest := max(width, height)
	if longest <= maxDim {
		return img
	}

	ratio := float64(maxDim) / float64(longest)
	newWidth := max(int(math.Round(float64(width)*ratio)), 1)
	newHeight := max(int(math.Round(float64(height)*ratio)), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// SamplePixels collects at most maxSamples RGB pixels from the image
// using grid sampling, so the sample covers the whole image rather than
// a leading band.
func SamplePixels(img image.Image, maxSamples int) []colour.RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	if totalPixels <= maxSamples {
		pixels := make([]colour.RGB, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, toRGB(img, x, y))
			}
		}
		return pixels
	}

	step := max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)

	pixels := make([]colour.RGB, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, toRGB(img, x, y))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// Prepare resizes and samples an image with the default bounds. This is
// the caller-side preprocessing the extractor expects.
func Prepare(img image.Image) []colour.RGB {
	return SamplePixels(Resize(img, MaxDimension), MaxSamples)
}

func toRGB(img image.Image, x, y int) colour.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return colour.RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
