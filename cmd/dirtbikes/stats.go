package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagRecent int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the race record",
	Long: `Display total races, wins, best time and the most recent races.

Race history needs the SQLite backend; with --stats-file only the
aggregate record is shown.

Examples:
  dirtbikes stats
  dirtbikes stats --recent 20
  dirtbikes stats --clear-history`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent races to list")
	statsCmd.Flags().BoolVar(&flagClear, "clear-history", false, "Delete the race history (the record is kept)")
}

func runStats(_ *cobra.Command, _ []string) error {
	app := openEnv()
	defer app.Close()

	if flagClear {
		if app.db == nil {
			return errors.New("race history needs the sqlite backend")
		}
		if err := app.db.ClearRaces(); err != nil {
			return err
		}
		fmt.Println("Race history cleared.")
		return nil
	}

	s := app.Stats.Stats()
	fmt.Println("Dirtbikes record")
	fmt.Println()
	fmt.Printf("  Races: %d\n", s.TotalRaces)
	fmt.Printf("  Wins:  %d\n", s.Wins)
	if s.BestTime != nil {
		fmt.Printf("  Best:  %.2fs\n", *s.BestTime)
	} else {
		fmt.Println("  Best:  --")
	}

	if app.db == nil || flagRecent <= 0 {
		return nil
	}

	races, err := app.db.RecentRaces(flagRecent)
	if err != nil {
		return err
	}

	fmt.Println()
	if len(races) == 0 {
		fmt.Println("No races recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dirtbikes play' to set the first time!")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-9s  %-8s  %s\n", "Date", "Place", "Time", "Winner", "Win time")
	fmt.Printf("  %-16s  %-6s  %-9s  %-8s  %s\n", "----", "-----", "----", "------", "--------")
	for _, r := range races {
		place, playerTime := "DNF", "--"
		if r.PlayerFinished {
			place = fmt.Sprintf("%d/%d", r.PlayerPlace, r.Racers)
			playerTime = fmt.Sprintf("%.2fs", r.PlayerTime)
		}
		fmt.Printf("  %-16s  %-6s  %-9s  %-8s  %.2fs\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), place, playerTime, r.Winner, r.WinnerTime)
	}
	return nil
}
