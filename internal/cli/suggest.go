package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/suggest"
)

var (
	// Suggest command flags
	suggestFormat  string
	suggestPreview bool
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <colour>...",
	Short: "Suggest harmony-based companion colours",
	Long: `Generate colour suggestions for one or more base colours.

For every base colour a set of harmony groups is produced, covering
complementary, analogous, triadic, split-complementary, tetradic,
rectangular, monochromatic, double complementary and shades-and-tints
relationships. Each group carries concrete colours plus use case and
mood guidance.

Examples:
  # Suggest companions for one colour
  colorcraft suggest "#2a9d8f"

  # Suggestions with terminal previews
  colorcraft suggest --preview "#e76f51"

  # Suggestions for multiple base colours as JSON
  colorcraft suggest --format json "#264653" "#e9c46a"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestFormat, "format", "f", "text", "output format (text, json)")
	suggestCmd.Flags().BoolVar(&suggestPreview, "preview", false, "show colour previews in terminal")
}

// runSuggest executes the suggest command.
func runSuggest(cmd *cobra.Command, args []string) error {
	palette, err := colour.ParsePalette(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	sets, err := suggest.ForPalette(palette)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}

	switch suggestFormat {
	case "json":
		out, err := json.MarshalIndent(sets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		fmt.Print(renderSuggestions(sets, suggestPreview && isTerminal()))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", suggestFormat)
	}
	return nil
}

// renderSuggestions builds the human-readable suggestion listing.
func renderSuggestions(sets []suggest.Set, preview bool) string {
	var b strings.Builder
	for i, set := range sets {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Base colour: %s\n", formatColour(set.BaseColor, preview))
		for _, group := range set.Harmonies {
			fmt.Fprintf(&b, "\n  %s (%s)\n", group.Type, group.Angle)
			fmt.Fprintf(&b, "  %s\n", group.Description)
			fmt.Fprintf(&b, "  Mood: %s\n", group.Mood)
			for _, s := range group.Suggestions {
				if preview {
					fmt.Fprintf(&b, "    %s\n", colour.FormatWithLabel(s.RGB, s.Name, 8))
				} else {
					fmt.Fprintf(&b, "    %-24s %s\n", s.Name, s.Hex)
				}
			}
		}
	}
	return b.String()
}

func formatColour(c colour.Colour, preview bool) string {
	if preview {
		return colour.FormatWithPreview(c.RGB, 8)
	}
	return c.Hex
}
