package core

// Color is a logical cell colour. The renderer maps it to a terminal code.
type Color uint8

// The zero value leaves the terminal's own foreground in place.
const (
	ColorDefault Color = iota

	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	ColorOrange
	ColorGray
)

// Palette is an ordered set of colours for effects that cycle.
type Palette []Color

// Common cycling palettes.
var (
	Rainbow = Palette{ColorBrightRed, ColorBrightYellow, ColorBrightGreen, ColorBrightCyan, ColorBrightMagenta}
	Warm    = Palette{ColorRed, ColorOrange, ColorYellow, ColorGreen}
)

// At returns the colour for step i, wrapping in both directions.
// An empty palette yields ColorDefault.
func (p Palette) At(i int) Color {
	n := len(p)
	if n == 0 {
		return ColorDefault
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}
