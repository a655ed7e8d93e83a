// dietowin is a puzzle platformer where every level wants you dead.
//
// Usage:
//
//	dietowin                    - Start the game at the main menu
//	dietowin --level <name>     - Start the game in a level
//	dietowin levels             - List levels
//	dietowin simulate <level>   - Run a level headless with scripted input
//	dietowin stats [level]      - Show attempt statistics
package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/automoto/dietowin/assets/shaders"
	"github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/fonts"
	"github.com/automoto/dietowin/scenes"
	"github.com/automoto/dietowin/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel      string
	flagDebug      bool
	flagConfigPath string
	flagDBPath     string
	flagSkipMenu   bool
	flagSeed       int64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelIndex int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if levelIndex >= 0 {
		g.scene = scenes.NewWorldScene(g, levelIndex)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.ScreenWidth, config.C.ScreenHeight)
	return config.C.ScreenWidth, config.C.ScreenHeight
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dietowin",
	Short: "Die to Win - a platformer where dying is part of the puzzle",
	Long: `Die to Win is a 2D puzzle platformer. Each level hides its exit
behind a small puzzle: an idle clicker, a code lock, tic-tac-toe,
a power meter. Spikes, crates and the void restart the attempt.

Examples:
  dietowin
  dietowin --level enigma
  dietowin simulate vertigo --script "right*120 jump+right*20 right*200"
  dietowin stats`,
	PersistentPreRunE: setup,
	RunE:              runGame,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and hitbox overlay")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a YAML config override")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath(), "Path to the attempt statistics database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Puzzle RNG seed (0 = random based on time)")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Start in this level (name or 1-based number)")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start in the first level")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
}

func defaultDBPath() string {
	dir := config.DataDir()
	if dir == "" {
		return "stats.db"
	}
	return filepath.Join(dir, "stats.db")
}

// setup configures logging and applies config overrides for every command.
func setup(cmd *cobra.Command, args []string) error {
	log.SetReportTimestamp(true)
	log.SetPrefix("dietowin")
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	path, err := config.LoadOverrides(flagConfigPath)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("config overrides applied", "path", path)
	}

	if flagDebug {
		config.Debug.Enabled = true
	}
	if flagSeed != 0 {
		config.Debug.Seed = flagSeed
	}
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	start := -1
	if flagSkipMenu {
		start = 0
	}
	if flagLevel != "" {
		idx, err := resolveLevel(flagLevel)
		if err != nil {
			return err
		}
		start = idx
	}

	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if err := systems.InitStats(flagDBPath); err != nil {
		log.Warn("could not open stats database, attempts will not be recorded", "path", flagDBPath, "err", err)
	}
	defer systems.CloseStats()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	if err := shaders.Load(); err != nil {
		return fmt.Errorf("loading shaders: %w", err)
	}

	ebiten.SetWindowSize(config.C.ScreenWidth, config.C.ScreenHeight)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	err := ebiten.RunGame(NewGame(start))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

var errUnknownLevel = errors.New("unknown level")

// resolveLevel accepts a level name in any case, with dashes or
// underscores for spaces, or its 1-based position in the play order.
func resolveLevel(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(config.Levels) {
			return n - 1, nil
		}
		return -1, fmt.Errorf("%w: %d (have %d levels)", errUnknownLevel, n, len(config.Levels))
	}

	want := normalizeLevelName(arg)
	for i, l := range config.Levels {
		if normalizeLevelName(l.Name) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q, run 'dietowin levels' to list them", errUnknownLevel, arg)
}

func normalizeLevelName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}
