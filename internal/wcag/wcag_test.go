package wcag

import (
	"errors"
	"math"
	"testing"

	"github.com/colorcraft/colorcraft/internal/colour"
)

func TestLuminanceExtremes(t *testing.T) {
	if got := Luminance(colour.RGB{R: 0, G: 0, B: 0}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(colour.RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	got := ContrastRatio(colour.RGB{R: 0, G: 0, B: 0}, colour.RGB{R: 255, G: 255, B: 255})
	if math.Abs(got-21.0) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}

	rating := Rate(got)
	if !rating.AANormal || !rating.AALarge || !rating.AAANormal || !rating.AAALarge {
		t.Errorf("black/white rating = %+v, want all compliant", rating)
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	a := colour.RGB{R: 30, G: 60, B: 200}
	b := colour.RGB{R: 240, G: 240, B: 10}

	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("ContrastRatio is not symmetric")
	}
}

func TestContrastRatioSelf(t *testing.T) {
	for _, c := range []colour.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 120, G: 30, B: 210}} {
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1.0", c, c, got)
		}
	}
}

func TestRateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Rating
	}{
		{
			name:  "below everything",
			ratio: 1.5,
			want:  Rating{Ratio: 1.5},
		},
		{
			name:  "aa large only",
			ratio: 3.2,
			want:  Rating{Ratio: 3.2, AALarge: true},
		},
		{
			name:  "aa normal boundary",
			ratio: 4.5,
			want:  Rating{Ratio: 4.5, AANormal: true, AALarge: true, AAALarge: true},
		},
		{
			name:  "aaa normal boundary",
			ratio: 7.0,
			want:  Rating{Ratio: 7.0, AANormal: true, AALarge: true, AAANormal: true, AAALarge: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.ratio); got != tt.want {
				t.Errorf("Rate(%v) = %+v, want %+v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestAnalyzeGreys(t *testing.T) {
	// Two near-identical greys: contrast far below AA-normal, so an
	// issue must be emitted.
	p, err := colour.ParsePalette([]string{"#777777", "#808080"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(a.Pairs) != 1 {
		t.Fatalf("Pairs = %d, want 1", len(a.Pairs))
	}
	pair := a.Pairs[0]
	if pair.Ratio >= AANormalThreshold {
		t.Errorf("Ratio = %v, want well below %v", pair.Ratio, AANormalThreshold)
	}
	if pair.AANormal {
		t.Error("AANormal = true, want false")
	}
	if len(a.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(a.Issues))
	}
	if a.Issues[0].Type != "low_contrast" {
		t.Errorf("Issue type = %s, want low_contrast", a.Issues[0].Type)
	}
}

func TestAnalyzePairCountAndOrder(t *testing.T) {
	p, err := colour.ParsePalette([]string{"#000000", "#ffffff", "#ff0000", "#00ff00"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// C(4,2) pairs, each evaluated exactly once.
	if a.Summary.TotalPairs != 6 || len(a.Pairs) != 6 {
		t.Fatalf("TotalPairs = %d (len %d), want 6", a.Summary.TotalPairs, len(a.Pairs))
	}

	// Color1 always carries the lower palette index.
	wantFirst := []string{"#000000", "#000000", "#000000", "#ffffff", "#ffffff", "#ff0000"}
	for i, pair := range a.Pairs {
		if pair.Color1 != wantFirst[i] {
			t.Errorf("Pairs[%d].Color1 = %s, want %s", i, pair.Color1, wantFirst[i])
		}
	}
}

func TestAnalyzeSummaryCounts(t *testing.T) {
	p, err := colour.ParsePalette([]string{"#000000", "#ffffff", "#808080"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	aa, aaa := 0, 0
	for _, pair := range a.Pairs {
		if pair.AANormal {
			aa++
		}
		if pair.AAANormal {
			aaa++
		}
	}
	if a.Summary.AACompliant != aa || a.Summary.AAACompliant != aaa {
		t.Errorf("Summary = %+v, want aa=%d aaa=%d", a.Summary, aa, aaa)
	}
}

func TestAnalyzeRequiresTwoColors(t *testing.T) {
	p, _ := colour.ParsePalette([]string{"#123456"})
	_, err := Analyze(p)
	if !errors.Is(err, colour.ErrInsufficientColors) {
		t.Errorf("Analyze() error = %v, want ErrInsufficientColors", err)
	}
}
