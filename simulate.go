package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/automoto/dietowin/assets"
	"github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/core"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagScript string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a level headless with scripted input",
	Long: `Steps a level at 60 frames per second without opening a window.

The script is a list of held inputs with frame counts:
  right*60 jump+right*10 none*30
Keys are left, right, jump and none. A step without a count lasts one
frame. The run stops at the first death or clear.

Examples:
  dietowin simulate vertigo --script "right*300"
  dietowin simulate 3 --frames 600 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (default: length of the script, at least 1s)")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	idx, err := resolveLevel(args[0])
	if err != nil {
		return err
	}
	script, err := core.ParseScript(flagScript)
	if err != nil {
		return err
	}
	layout, err := assets.NewLevelLoader().Load(config.Levels[idx].Name)
	if err != nil {
		return err
	}

	frames := flagFrames
	if frames <= 0 {
		frames = max(script.Frames(), 60)
	}
	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := core.New(layout, rand.New(rand.NewSource(seed)))
	log.Debug("simulating", "level", w.Name(), "frames", frames, "seed", seed)

	counts := map[core.Event]int{}
	var res core.Result
	for i := 0; i < frames; i++ {
		res = w.Step(1.0/60, script.Input(i))
		for _, ev := range res.Events {
			counts[ev]++
		}
		if res.Dead || res.Cleared {
			break
		}
	}

	outcome := "running"
	switch {
	case res.Cleared:
		outcome = "cleared"
	case res.Dead:
		outcome = "died (" + res.Cause.String() + ")"
	}
	fmt.Printf("Level:    %s\n", w.Name())
	fmt.Printf("Outcome:  %s\n", outcome)
	fmt.Printf("Frames:   %d\n", w.Frames)
	fmt.Printf("Time:     %.2fs\n", w.Elapsed)
	fmt.Printf("Player:   x=%.1f y=%.1f\n", w.Player.X, w.Player.Y)
	if len(counts) > 0 {
		fmt.Println("Events:")
		for _, ev := range sortedEvents(counts) {
			fmt.Printf("  %-14s %d\n", ev, counts[ev])
		}
	}
	return nil
}

func sortedEvents(counts map[core.Event]int) []core.Event {
	out := make([]core.Event, 0, len(counts))
	for ev := range counts {
		out = append(out, ev)
	}
	slices.Sort(out)
	return out
}
