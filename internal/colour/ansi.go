// Package colour provides the colour value model and colour space
// conversions used by the analysis engine.
package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the colour block should be.
func Preview(rgb RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// FormatWithPreview formats a colour with its preview and hex code.
func FormatWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(rgb, width), rgb.Hex())
}

// FormatWithLabel formats a colour with a label, preview and hex code.
func FormatWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-24s %s", Preview(rgb, width), label, rgb.Hex())
}
