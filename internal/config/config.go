// Package config provides YAML-based configuration loading for the
// dirtbikes race: field size, accessibility defaults, glyph theme and
// where the race record is kept.
package config

import "unicode/utf8"

// Bot count bounds accepted from configuration and from the home screen.
const (
	MinBots = 0
	MaxBots = 12
)

// MinViewWidth is the narrowest viewport the camera is laid out for.
const MinViewWidth = 60

// DirtbikesConfig contains all configuration for the race.
type DirtbikesConfig struct {
	Race  RaceConfig  `yaml:"race"`
	Theme ThemeConfig `yaml:"theme"`
	Stats StatsConfig `yaml:"stats"`
}

// RaceConfig defines the starting field and motion preferences.
type RaceConfig struct {
	Bots          int  `yaml:"bots"`
	ReducedMotion bool `yaml:"reduced_motion"`
	ViewWidthMin  int  `yaml:"view_width_min"`
}

// ThemeConfig maps each visual element to a single glyph.
// Only the first rune of each value is used.
type ThemeConfig struct {
	Player   string `yaml:"player"`
	Bot      string `yaml:"bot"`
	Ground   string `yaml:"ground"`
	Rock     string `yaml:"rock"`
	Log      string `yaml:"log"`
	Ramp     string `yaml:"ramp"`
	Spark    string `yaml:"spark"`
	Dust     string `yaml:"dust"`
	Confetti string `yaml:"confetti"`
}

// StatsConfig selects the persistence backend for the race record.
type StatsConfig struct {
	Backend string `yaml:"backend"` // "sqlite" or "json"
	Path    string `yaml:"path"`
}

// Normalize clamps out-of-range values and restores empty glyphs.
func (c *DirtbikesConfig) Normalize() {
	def := baseConfig()

	c.Race.Bots = ClampBots(c.Race.Bots)
	if c.Race.ViewWidthMin < MinViewWidth {
		c.Race.ViewWidthMin = MinViewWidth
	}

	fixGlyph(&c.Theme.Player, def.Theme.Player)
	fixGlyph(&c.Theme.Bot, def.Theme.Bot)
	fixGlyph(&c.Theme.Ground, def.Theme.Ground)
	fixGlyph(&c.Theme.Rock, def.Theme.Rock)
	fixGlyph(&c.Theme.Log, def.Theme.Log)
	fixGlyph(&c.Theme.Ramp, def.Theme.Ramp)
	fixGlyph(&c.Theme.Spark, def.Theme.Spark)
	fixGlyph(&c.Theme.Dust, def.Theme.Dust)
	fixGlyph(&c.Theme.Confetti, def.Theme.Confetti)

	switch c.Stats.Backend {
	case "sqlite", "json":
	default:
		c.Stats.Backend = def.Stats.Backend
	}
	// A default path only fits its own backend.
	want, other := DefaultStatsDB, DefaultStatsFile
	if c.Stats.Backend == "json" {
		want, other = DefaultStatsFile, DefaultStatsDB
	}
	if c.Stats.Path == "" || c.Stats.Path == other {
		c.Stats.Path = want
	}
}

// ClampBots bounds a requested bot count to [MinBots, MaxBots].
func ClampBots(n int) int {
	if n < MinBots {
		return MinBots
	}
	if n > MaxBots {
		return MaxBots
	}
	return n
}

// Glyph returns the first rune of s.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func fixGlyph(dst *string, fallback string) {
	if r := Glyph(*dst); r == utf8.RuneError || r == ' ' {
		*dst = fallback
	}
}
