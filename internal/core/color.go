package core

// Color is the drawing role of a screen cell. Hosts map roles to concrete
// terminal or window colors from the configured palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnake
	ColorEmpty
	ColorFood
	ColorHUD
	ColorOverlay
)

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSnake:
		return "snake"
	case ColorEmpty:
		return "empty"
	case ColorFood:
		return "food"
	case ColorHUD:
		return "hud"
	case ColorOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}
