package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dirtbikes/internal/config"
	"github.com/vovakirdan/tui-dirtbikes/internal/core"
	"github.com/vovakirdan/tui-dirtbikes/internal/platform/tui"
	"github.com/vovakirdan/tui-dirtbikes/internal/registry"
	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
	"github.com/vovakirdan/tui-dirtbikes/internal/storage"
)

const defaultLogPath = "~/.dirtbikes/dirtbikes.log"

// appEnv holds everything a command opened and must close.
type appEnv struct {
	registry.Env
	db      *storage.Store // nil unless the sqlite backend is open
	logFile *os.File
}

// History returns the race log, or nil when the backend keeps none.
func (a *appEnv) History() tui.RaceHistory {
	if a.db == nil {
		return nil
	}
	return a.db
}

// Close releases the stats store and log file.
func (a *appEnv) Close() {
	if a.db != nil {
		a.db.Close() //nolint:errcheck // Best-effort close
	}
	if a.logFile != nil {
		a.logFile.Close() //nolint:errcheck // Best-effort close
	}
}

// openEnv loads config, opens the log and the stats store, and loads the
// record. Failures degrade to defaults and are reported as warnings.
func openEnv() *appEnv {
	app := &appEnv{}
	app.Logger, app.logFile = openLogger(flagLogPath)

	cfg, err := config.LoadDirtbikes(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		app.Logger.Warn("config load failed", "error", err)
	}
	applyStatsFlags(&cfg)
	app.Config = &cfg

	var store stats.Store
	switch cfg.Stats.Backend {
	case "json":
		file := stats.NewFile(cfg.Stats.Path)
		app.Logger.Info("using stats file", "path", file.Path())
		store = file
	default:
		db, err := storage.Open(cfg.Stats.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
			app.Logger.Warn("stats database unavailable", "error", err)
			break
		}
		app.db = db
		store = db
	}

	app.Stats = stats.OpenBook(store, app.Logger)
	return app
}

// applyStatsFlags lets --stats-file and --db override the configured backend.
func applyStatsFlags(cfg *config.DirtbikesConfig) {
	switch {
	case flagStatsFile != "":
		cfg.Stats.Backend = "json"
		cfg.Stats.Path = flagStatsFile
	case flagDBPath != "":
		cfg.Stats.Backend = "sqlite"
		cfg.Stats.Path = flagDBPath
	}
}

// openLogger opens the log file for appending. The TUI owns stdout, so logs
// never go to the terminal; if the file cannot be opened logs are discarded.
func openLogger(path string) (*log.Logger, *os.File) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dirtbikes",
	})
	return logger, f
}

// runtimeConfig builds the runtime config from flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
