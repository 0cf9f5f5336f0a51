// ColorCraft - a colour palette analysis engine
//
// ColorCraft extracts colour palettes from images and analyses them for
// colour theory harmonies and WCAG accessibility.
package main

import (
	"github.com/colorcraft/colorcraft/internal/cli"
)

func main() {
	cli.Execute()
}
