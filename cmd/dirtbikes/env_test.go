package main

import (
	"testing"

	"github.com/vovakirdan/tui-dirtbikes/internal/config"
)

func TestApplyStatsFlags(t *testing.T) {
	tests := []struct {
		name        string
		statsFile   string
		dbPath      string
		wantBackend string
		wantPath    string
	}{
		{"config wins without flags", "", "", "sqlite", config.DefaultStatsDB},
		{"db flag", "", "/tmp/x.db", "sqlite", "/tmp/x.db"},
		{"stats file flag", "/tmp/s.json", "", "json", "/tmp/s.json"},
		{"stats file beats db", "/tmp/s.json", "/tmp/x.db", "json", "/tmp/s.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagStatsFile, flagDBPath = tt.statsFile, tt.dbPath
			t.Cleanup(func() { flagStatsFile, flagDBPath = "", "" })

			cfg := config.DefaultDirtbikesConfig()
			applyStatsFlags(&cfg)

			if cfg.Stats.Backend != tt.wantBackend || cfg.Stats.Path != tt.wantPath {
				t.Errorf("stats = %+v, want %s at %s", cfg.Stats, tt.wantBackend, tt.wantPath)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
