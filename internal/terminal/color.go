package terminal

// ColorKind tags which representation a Color value holds.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default foreground/background.
	ColorDefault ColorKind = iota
	// ColorAnsi is one of the 16 standard ANSI colors (0-15).
	ColorAnsi
	// ColorPalette256 indexes the 256-color palette (0-255).
	ColorPalette256
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a tagged union over the four color representations a cell can
// carry: the terminal default, a standard ANSI index, a 256-color palette
// index, or an explicit RGB triple.
type Color struct {
	Kind    ColorKind
	Index   uint8 // valid for ColorAnsi (0-15) and ColorPalette256 (0-255)
	R, G, B uint8 // valid for ColorRGB
}

// DefaultColor returns the tagged default color.
func DefaultColor() Color { return Color{Kind: ColorDefault} }

// AnsiColor returns a standard ANSI color, 0-15.
func AnsiColor(index uint8) Color {
	return Color{Kind: ColorAnsi, Index: index & 0x0F}
}

// Palette256Color returns a 256-color palette index.
func Palette256Color(index uint8) Color {
	return Color{Kind: ColorPalette256, Index: index}
}

// RGBColor returns an explicit true-color triple.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// ansiPalette16 is the standard 16-color ANSI palette (0-7 normal, 8-15
// bright), used to resolve ColorAnsi values to RGB for hosts that want one.
var ansiPalette16 = [16][3]uint8{
	{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
	{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
	{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
	{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
}

// palette256 extends ansiPalette16 with the 216-color cube and 24-step
// grayscale ramp xterm defines for indices 16-255.
var palette256 = buildPalette256()

func buildPalette256() [256][3]uint8 {
	var p [256][3]uint8
	for i := 0; i < 16; i++ {
		p[i] = ansiPalette16[i]
	}
	i := 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = [3]uint8{steps[r], steps[g], steps[b]}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[i] = [3]uint8{gray, gray, gray}
		i++
	}
	return p
}

// ResolveRGB converts any Color to concrete RGB, using defaultFg/defaultBg
// for ColorDefault. fg selects which default to use when Kind is
// ColorDefault.
func ResolveRGB(c Color, fg bool, defaultFg, defaultBg [3]uint8) (r, g, b uint8) {
	switch c.Kind {
	case ColorAnsi:
		rgb := ansiPalette16[c.Index&0x0F]
		return rgb[0], rgb[1], rgb[2]
	case ColorPalette256:
		rgb := palette256[c.Index]
		return rgb[0], rgb[1], rgb[2]
	case ColorRGB:
		return c.R, c.G, c.B
	default:
		if fg {
			return defaultFg[0], defaultFg[1], defaultFg[2]
		}
		return defaultBg[0], defaultBg[1], defaultBg[2]
	}
}
