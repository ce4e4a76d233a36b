package core

// Color represents a foreground color for a screen cell.
// The platform maps these onto terminal colors.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorGray
	ColorCursor // Reverse video highlight
)

// CountColor returns the conventional color for a neighbor count digit.
func CountColor(n int) Color {
	switch n {
	case 0:
		return ColorGray
	case 1:
		return ColorBlue
	case 2:
		return ColorGreen
	case 3:
		return ColorRed
	case 4:
		return ColorMagenta
	case 5:
		return ColorYellow
	default:
		return ColorCyan
	}
}
