// Package extract produces representative colour palettes from pixel
// samples using k-means clustering in CIE LAB space.
package extract

import (
	"errors"
	"fmt"

	"github.com/colorcraft/colorcraft/internal/colour"
)

const (
	// MinColors and MaxColors bound the requested palette size.
	MinColors = 3
	MaxColors = 10

	// DefaultSeed makes extraction reproducible unless the caller asks
	// for a different seed.
	DefaultSeed int64 = 42
)

// ErrCountOutOfRange is returned when the requested colour count is
// outside [MinColors, MaxColors].
var ErrCountOutOfRange = errors.New("colour count out of range")

// Error reports a failed extraction. The palette is never silently
// truncated; an unsatisfiable request surfaces as an Error.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "extraction failed: " + e.Reason
}

// Config holds the parameters of one extraction run.
type Config struct {
	// Count is the number of colours to extract (3-10).
	Count int

	// Seed drives every random choice the clustering makes. Two runs
	// with identical pixels, count and seed produce identical palettes.
	Seed int64
}

// DefaultConfig returns an extraction config for the given colour count
// with the fixed default seed.
func DefaultConfig(count int) Config {
	return Config{Count: count, Seed: DefaultSeed}
}

// Validate checks the configuration against the documented ranges.
func (c Config) Validate() error {
	if c.Count < MinColors || c.Count > MaxColors {
		return fmt.Errorf("%w: n_colors must be %d-%d, got %d",
			ErrCountOutOfRange, MinColors, MaxColors, c.Count)
	}
	return nil
}

// Palette extracts cfg.Count representative colours from the pixel
// sample. Pixels are clustered in LAB space, where euclidean distance
// tracks perceived colour difference, and each cluster is represented
// by its per-channel median so the result stays close to colours that
// actually occur in the sample.
func Palette(pixels []colour.RGB, cfg Config) (*colour.Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pixels) == 0 {
		return nil, &Error{Reason: "pixel sample is empty"}
	}

	distinct := countDistinct(pixels, cfg.Count)
	if distinct < cfg.Count {
		return nil, &Error{Reason: fmt.Sprintf(
			"requested %d colours but sample contains only %d distinct colours",
			cfg.Count, distinct)}
	}

	points := make([]colour.Lab, len(pixels))
	for i, p := range pixels {
		points[i] = colour.RGBToLab(p)
	}

	best := runKMeans(points, cfg.Count, cfg.Seed)

	colors := make([]colour.Colour, cfg.Count)
	for i, members := range best.members() {
		if len(members) == 0 {
			// An empty cluster must surface rather than default to a
			// placeholder colour.
			return nil, &Error{Reason: fmt.Sprintf("cluster %d is empty", i)}
		}
		rep := medianLab(members)
		colors[i] = colour.FromRGB(colour.LabToRGB(rep))
	}

	return colour.NewPalette(colors), nil
}

// countDistinct counts distinct pixel values, stopping once enough have
// been seen to satisfy the request.
func countDistinct(pixels []colour.RGB, enough int) int {
	seen := make(map[colour.RGB]struct{}, enough)
	for _, p := range pixels {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			if len(seen) >= enough {
				return len(seen)
			}
		}
	}
	return len(seen)
}
