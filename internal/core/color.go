package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the narration log and panels.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrown
	ColorYellow
	ColorOrange
	ColorRed
	ColorGreen
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorBrown:
		return "brown"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
