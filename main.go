// sketchbook runs two small interactive physics demos.
//
// Usage:
//
//	sketchbook                        - Open the demo menu
//	sketchbook --demo platformer      - Skip the menu and start a demo
//	sketchbook list                   - List available demos
//
// Global flags:
//
//	--config <path>     - YAML config overlay
//	--log-level <level> - debug, info, warn or error (default: info)
//	--debug             - Start with the debug overlay on
//	--tps <rate>        - Ticks per second (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/fonts"
	"github.com/automoto/sketchbook/scenes"
	"github.com/automoto/sketchbook/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDemo     string
	flagDebug    bool
	flagTPS      int
)

type Game struct {
	scene    scenes.Scene
	quitting bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

// Quit ends the game loop after the current frame.
func (g *Game) Quit() {
	g.quitting = true
}

func NewGame(demo config.DemoID) (*Game, error) {
	g := &Game{}
	scene, err := scenes.NewStartScene(g, demo)
	if err != nil {
		return nil, err
	}
	g.scene = scene
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quitting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketchbook",
	Short: "Sketchbook - small interactive physics demos",
	Long: `Sketchbook bundles two small interactive demos:

  attraction  - a mover pulled toward the pointer, tracing its path
  platformer  - a red block that runs and jumps across black blocks

Examples:
  sketchbook
  sketchbook --demo platformer --debug
  sketchbook list`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagDemo, "demo", "", "Start a demo directly (attraction, platformer)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Ticks per second (0 = config value)")

	rootCmd.AddCommand(listCmd)
}

func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sketchbook",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("config loaded", "path", path)
	}

	demo, err := config.ParseDemo(flagDemo)
	if err != nil {
		return err
	}
	config.Debug.Demo = demo
	config.Debug.ShowCollisions = flagDebug
	if flagTPS > 0 {
		config.C.TPS = flagTPS
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := fonts.LoadDefaultFonts(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Persistence is optional; the game runs without saved settings.
	if err := systems.InitPersistence(); err == nil {
		if saved, _ := systems.LoadSettings(); saved != nil {
			ebiten.SetFullscreen(saved.Fullscreen)
		}
	}

	game, err := NewGame(config.Debug.Demo)
	if err != nil {
		return err
	}
	log.Debug("starting", "demo", demo, "tps", config.C.TPS)
	return ebiten.RunGame(game)
}
