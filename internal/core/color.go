package core

// Color is a foreground color for a screen cell. The TUI maps each value
// to an ANSI color; unknown values render in the terminal default.
type Color uint8

// Neighbor counts 1 to 6 use distinct colors so adjacent numbers stay
// readable on a dense board.
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
	ColorOrange
	ColorGray

	colorCount
)

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return c < colorCount
}
