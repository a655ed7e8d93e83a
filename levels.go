package main

import (
	"fmt"

	"github.com/automoto/dietowin/assets"
	"github.com/automoto/dietowin/config"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels in play order",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader := assets.NewLevelLoader()

	maxNameLen := len("Name")
	for _, l := range config.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Size")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxNameLen, "----", "----")
	for i, l := range config.Levels {
		layout, err := loader.Load(l.Name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-3d  %-*s  %dx%d\n", i+1, maxNameLen, l.Name, layout.Cols, layout.Rows)
	}

	fmt.Println()
	fmt.Println("Run 'dietowin --level <name>' to play a level.")
	return nil
}
