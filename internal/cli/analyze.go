package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/harmony"
	"github.com/colorcraft/colorcraft/internal/wcag"
)

var (
	// Analyze command flags
	analyzeFormat  string
	analyzePreview bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <colour>...",
	Short: "Analyse a palette for harmonies and accessibility",
	Long: `Analyse a set of hex colours for colour theory harmonies and WCAG
contrast accessibility.

The harmony analysis detects complementary, analogous, triadic,
tetradic, split-complementary and monochromatic relationships, reports
the palette's warm/cool balance and scores the palette from 0 to 100.
The accessibility analysis computes the WCAG contrast ratio of every
colour pair and flags pairs that fall below the AA threshold for normal
text.

Examples:
  # Analyse three colours
  colorcraft analyze "#ff0000" "#00ffff" "#0000ff"

  # Full analysis as JSON
  colorcraft analyze --format json "#264653" "#2a9d8f" "#e9c46a"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format (text, json)")
	analyzeCmd.Flags().BoolVar(&analyzePreview, "preview", false, "show colour previews in terminal")
}

// analysisReport is the combined JSON output of the analyze command.
type analysisReport struct {
	Colors        []colour.Colour   `json:"colors"`
	ColorTheory   *harmony.Analysis `json:"color_theory"`
	Accessibility *wcag.Analysis    `json:"accessibility"`
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	palette, err := colour.ParsePalette(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	theory, err := harmony.Analyze(palette)
	if err != nil {
		return fmt.Errorf("harmony analysis failed: %w", err)
	}
	access, err := wcag.Analyze(palette)
	if err != nil {
		return fmt.Errorf("accessibility analysis failed: %w", err)
	}

	switch analyzeFormat {
	case "json":
		out, err := json.MarshalIndent(analysisReport{
			Colors:        palette.Colors,
			ColorTheory:   theory,
			Accessibility: access,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		fmt.Print(renderAnalysis(palette, theory, access, analyzePreview && isTerminal()))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", analyzeFormat)
	}
	return nil
}

// renderAnalysis builds the human-readable analysis report.
func renderAnalysis(p *colour.Palette, theory *harmony.Analysis, access *wcag.Analysis, preview bool) string {
	var b strings.Builder

	b.WriteString("Palette:\n")
	for i, c := range p.Colors {
		if preview {
			fmt.Fprintf(&b, "  %2d: %s\n", i, colour.FormatWithPreview(c.RGB, 8))
		} else {
			fmt.Fprintf(&b, "  %2d: %s\n", i, c.Hex)
		}
	}

	b.WriteString("\nHarmonies:\n")
	writeDetection(&b, "complementary", len(theory.Complementary))
	writeDetection(&b, "analogous", len(theory.Analogous))
	writeDetection(&b, "triadic", len(theory.Triadic))
	writeDetection(&b, "tetradic", len(theory.Tetradic))
	writeDetection(&b, "split-complementary", len(theory.SplitComplementary))
	fmt.Fprintf(&b, "  monochromatic:       %v\n", theory.Monochromatic)

	fmt.Fprintf(&b, "\nTemperature: %s (%d warm, %d cool)\n",
		theory.Temperature.Balance, theory.Temperature.WarmCount, theory.Temperature.CoolCount)
	fmt.Fprintf(&b, "Score: %d/100\n", theory.Score)

	if len(theory.Tags) > 0 {
		b.WriteString("Tags:\n")
		for _, tag := range theory.Tags {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}

	b.WriteString("\nAccessibility:\n")
	fmt.Fprintf(&b, "  %d of %d pairs meet AA, %d meet AAA\n",
		access.Summary.AACompliant, access.Summary.TotalPairs, access.Summary.AAACompliant)
	for _, pair := range access.Pairs {
		fmt.Fprintf(&b, "  %s on %s: %.2f:1%s\n",
			pair.Color1, pair.Color2, pair.Ratio, complianceNote(pair))
	}
	for _, issue := range access.Issues {
		fmt.Fprintf(&b, "  [%s] %s\n", issue.Severity, issue.Message)
	}

	return b.String()
}

func writeDetection(b *strings.Builder, name string, count int) {
	fmt.Fprintf(b, "  %-20s %d found\n", name+":", count)
}

func complianceNote(pair wcag.Pair) string {
	switch {
	case pair.AAANormal:
		return " (AAA)"
	case pair.AANormal:
		return " (AA)"
	case pair.AALarge:
		return " (AA large text only)"
	default:
		return " (fails AA)"
	}
}
