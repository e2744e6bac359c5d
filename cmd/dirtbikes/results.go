package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dirtbikes/internal/platform/tui"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse race history",
	Long: `Open the interactive results board with recent and fastest races.

Examples:
  dirtbikes results
  dirtbikes results --db ./dirtbikes.db`,
	RunE: runResults,
}

func runResults(_ *cobra.Command, _ []string) error {
	app := openEnv()
	defer app.Close()

	cfg := runtimeConfig()
	_, err := tui.RunResults(app.History(), app.Stats, cfg.ScreenW, cfg.ScreenH)
	return err
}
