package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colorcraft/colorcraft/internal/colour"
	"github.com/colorcraft/colorcraft/internal/extract"
	"github.com/colorcraft/colorcraft/internal/image"
)

var (
	// Extract command flags
	extractColours int
	extractSeed    int64
	extractFormat  string
	extractOutput  string
	extractPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a representative colour palette from an image.

Pixels are clustered in perceptual colour space and each cluster is
represented by its median colour, so the palette stays close to colours
that actually occur in the image. Extraction is deterministic: the same
image, colour count and seed always produce the same palette.

Supported image formats: JPEG, PNG, GIF, WebP
Images can be local files or HTTP(S) URLs.

Examples:
  # Extract 5 colours (default) from an image
  colorcraft extract wallpaper.jpg

  # Extract 8 colours with terminal previews
  colorcraft extract --preview --colours 8 wallpaper.png

  # Extract colours from a URL and output as JSON
  colorcraft extract --format json https://example.com/photo.jpg

  # Extract colours and save to a file
  colorcraft extract --output palette.txt wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 5, "number of colours to extract (3-10)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", extract.DefaultSeed, "clustering seed for reproducible palettes")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	cfg := extract.Config{Count: extractColours, Seed: extractSeed}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	pixels := image.Prepare(img)
	if verbose {
		fmt.Fprintf(os.Stderr, "Clustering %d sampled pixels into %d colours...\n", len(pixels), cfg.Count)
	}

	palette, err := extract.Palette(pixels, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	output, err := formatPalette(palette, extractFormat, extractPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Write output to file or stdout
	if extractOutput != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "Writing output to: %s\n", extractOutput)
		}
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, c := range palette.Colors {
		if showPreview && isTerminal() {
			output += colour.FormatWithPreview(c.RGB, 8) + "\n"
		} else {
			output += c.Hex + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, c := range palette.Colors {
		if showPreview && isTerminal() {
			output += colour.Preview(c.RGB, 8) + "  " + c.RGB.String() + "\n"
		} else {
			output += c.RGB.String() + "\n"
		}
	}
	return output
}

// isTerminal reports whether stdout is attached to a terminal, so ANSI
// previews are skipped when output is piped.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
