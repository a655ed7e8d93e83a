package main

import (
	"fmt"

	"github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/storage"
	"github.com/spf13/cobra"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show attempt statistics",
	Long: `Without an argument, prints attempts, deaths, clears and the best clear
time of every level. With a level, also lists its most recent attempts.

Examples:
  dietowin stats
  dietowin stats cookies --recent 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Recent attempts to list for a level")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening stats database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printAllStats(store)
	}

	idx, err := resolveLevel(args[0])
	if err != nil {
		return err
	}
	return printLevelStats(store, config.Levels[idx].Name)
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	byName := make(map[string]storage.LevelStats, len(all))
	for _, st := range all {
		byName[st.Level] = st
	}

	fmt.Printf("  %-16s  %8s  %6s  %6s  %s\n", "Level", "Attempts", "Deaths", "Clears", "Best")
	fmt.Printf("  %-16s  %8s  %6s  %6s  %s\n", "-----", "--------", "------", "------", "----")
	for _, l := range config.Levels {
		st := byName[l.Name]
		fmt.Printf("  %-16s  %8d  %6d  %6d  %s\n", l.Name, st.Attempts, st.Deaths, st.Clears, formatBest(st.BestClear))
	}
	return nil
}

func printLevelStats(store *storage.Store, name string) error {
	st, err := store.Stats(name)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n", name)
	fmt.Printf("  Attempts: %d\n  Deaths:   %d\n  Clears:   %d\n  Best:     %s\n\n",
		st.Attempts, st.Deaths, st.Clears, formatBest(st.BestClear))

	recent, err := store.RecentAttempts(name, flagRecent)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No attempts recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-10s  %s\n", "Date", "Outcome", "Cause", "Time")
	fmt.Printf("  %-16s  %-7s  %-10s  %s\n", "----", "-------", "-----", "----")
	for _, a := range recent {
		cause := a.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-16s  %-7s  %-10s  %.2fs\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Outcome, cause, a.Seconds)
	}
	return nil
}

func formatBest(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", seconds)
}
