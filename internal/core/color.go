package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal colour.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// TierColor returns the colour used for a bubble of the given tier.
func TierColor(tier int) Color {
	switch {
	case tier >= 4:
		return ColorRed
	case tier == 3:
		return ColorOrange
	case tier == 2:
		return ColorYellow
	default:
		return ColorGreen
	}
}
