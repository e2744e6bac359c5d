package config

import (
	_ "embed"
)

// Default locations of the race record.
const (
	DefaultStatsDB   = "~/.dirtbikes/dirtbikes.db"
	DefaultStatsFile = "~/.dirtbikes/stats.json"
)

//go:embed defaults/dirtbikes.yaml
var defaultDirtbikesYAML []byte

// DefaultDirtbikesConfig returns the default race configuration.
func DefaultDirtbikesConfig() DirtbikesConfig {
	cfg := baseConfig()
	cfg.Normalize()
	return cfg
}

// baseConfig holds the defaults a config file is decoded over. The stats
// path is left empty so Normalize can pick it by backend.
func baseConfig() DirtbikesConfig {
	return DirtbikesConfig{
		Race: RaceConfig{
			Bots:          4,
			ReducedMotion: false,
			ViewWidthMin:  MinViewWidth,
		},
		Theme: ThemeConfig{
			Player:   "⟲",
			Bot:      "∎",
			Ground:   "_",
			Rock:     "◼",
			Log:      "▭",
			Ramp:     "⫸",
			Spark:    "*",
			Dust:     ".",
			Confetti: "✺",
		},
		Stats: StatsConfig{
			Backend: "sqlite",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDirtbikesYAML
}
