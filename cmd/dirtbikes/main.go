// dirtbikes is a terminal dirtbike racing game.
//
// Usage:
//
//	dirtbikes play [mode]     - Race (default mode: dirtbikes)
//	dirtbikes list            - List race modes
//	dirtbikes menu            - Pick a mode interactively
//	dirtbikes stats           - Print the race record and recent races
//	dirtbikes results         - Browse race history
//	dirtbikes serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible tracks
//	--db <path>          - Use the SQLite stats store at path
//	--stats-file <path>  - Use a JSON stats file at path instead
//	--config <path>      - Load configuration from a YAML file
//	--log <path>         - Log file (default: ~/.dirtbikes/dirtbikes.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-dirtbikes/internal/games/dirtbikes"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagStatsFile string
	flagConfig    string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dirtbikes",
	Short: "Dirtbikes - race dirtbikes in your terminal",
	Long: `Dirtbikes is a side-scrolling dirtbike race against bots.
Dodge rocks and logs, hit ramps, and beat your best time.

Available commands:
  play     - Start racing
  list     - Show all race modes
  menu     - Interactive mode picker
  stats    - Print your record
  results  - Browse race history
  serve    - Start SSH server for remote play

Examples:
  dirtbikes play
  dirtbikes play timetrial --seed 42
  dirtbikes menu
  dirtbikes stats --stats-file ~/.dirtbikes/stats.json
  dirtbikes serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite stats database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagStatsFile, "stats-file", "", "Path to JSON stats file (overrides --db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", defaultLogPath, "Path to log file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
