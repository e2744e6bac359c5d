package dirtbikes

import (
	"github.com/vovakirdan/tui-dirtbikes/internal/config"
	"github.com/vovakirdan/tui-dirtbikes/internal/core"
)

// Theme holds the glyph used for each visual element.
type Theme struct {
	Player   rune
	Bot      rune
	Ground   rune
	Rock     rune
	Log      rune
	Ramp     rune
	Spark    rune
	Dust     rune
	Confetti rune
}

// ThemeFromConfig converts configured glyph strings into runes.
func ThemeFromConfig(c config.ThemeConfig) Theme {
	return Theme{
		Player:   config.Glyph(c.Player),
		Bot:      config.Glyph(c.Bot),
		Ground:   config.Glyph(c.Ground),
		Rock:     config.Glyph(c.Rock),
		Log:      config.Glyph(c.Log),
		Ramp:     config.Glyph(c.Ramp),
		Spark:    config.Glyph(c.Spark),
		Dust:     config.Glyph(c.Dust),
		Confetti: config.Glyph(c.Confetti),
	}
}

// DefaultTheme returns the stock glyph set.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultDirtbikesConfig().Theme)
}

// Display colors.
const (
	colorPlayer = core.ColorBrightGreen
	colorBot    = core.ColorBrightMagenta
	colorGround = core.ColorGray
	colorHUD    = core.ColorBrightYellow
	colorHint   = core.ColorBlue
	colorTitle  = core.ColorBrightCyan
	colorDanger = core.ColorBrightRed
)

var confettiPalette = [...]core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorGreen,
}
