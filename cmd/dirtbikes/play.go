package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dirtbikes/internal/games/dirtbikes"
	"github.com/vovakirdan/tui-dirtbikes/internal/platform/tui"
	"github.com/vovakirdan/tui-dirtbikes/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start racing",
	Long: `Start a race in the given mode (default: dirtbikes).

Controls:
  D/Right    - Throttle
  A/Left     - Brake
  Space/Up   - Jump
  S          - Engine on/off
  P/Esc      - Pause
  M          - Reduced motion
  R          - Rematch
  H          - Home screen
  +/-        - More/fewer bots (home screen)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Examples:
  dirtbikes play
  dirtbikes play timetrial
  dirtbikes play --seed 7 --fps 60
  dirtbikes play --config ./my-dirtbikes.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	modeID := dirtbikes.ModeRace.ID
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'dirtbikes list' to see available modes", modeID)
	}

	app := openEnv()
	defer app.Close()

	game, err := registry.Create(modeID, app.Env)
	if err != nil {
		return err
	}

	app.Logger.Info("starting", "mode", modeID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, runtimeConfig(), app.Logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
