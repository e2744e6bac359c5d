package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dirtbikes/internal/platform/tui"
	"github.com/vovakirdan/tui-dirtbikes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a race mode from a menu",
	Long: `Start dirtbikes in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode,
Tab to browse race history. Quitting a race returns to the menu.

Examples:
  dirtbikes menu
  dirtbikes menu --fps 60`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	app := openEnv()
	defer app.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(app.Stats, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(app.History(), app.Stats, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID, app.Env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh track for each race unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, app.Logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
