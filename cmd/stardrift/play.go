package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/krotovic/stardrift/internal/config"
	"github.com/krotovic/stardrift/internal/phi"
	"github.com/krotovic/stardrift/internal/platform/sdl"
	"github.com/krotovic/stardrift/internal/registry"
	"github.com/krotovic/stardrift/internal/views"
)

func init() {
	// SDL wants the window and renderer on the main OS thread.
	runtime.LockOSThread()
}

var playCmd = &cobra.Command{
	Use:   "play [view]",
	Short: "Launch the game",
	Long: `Open a window and start the game at the given view (default: menu).

Controls:
  Arrows     - Move the ship
  Space      - Fire
  1/2/3      - Select cannon: straight, sine, divergent
  Esc        - Back to menu / quit from menu

Examples:
  stardrift play
  stardrift play game
  stardrift play --seed 42 --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	viewID := "menu"
	if len(args) == 1 {
		viewID = args[0]
	}

	if !registry.Exists(viewID) {
		fmt.Fprintf(os.Stderr, "Error: unknown view %q\n", viewID)
		fmt.Fprintln(os.Stderr, "Run 'stardrift list' to see available views.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	tickRate := cfg.Loop.FPS
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	views.Configure(cfg, flagSeed)

	platform, err := sdl.New(sdl.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing video: %v\n", err)
		os.Exit(1)
	}
	defer platform.Destroy()

	p := phi.New(platform.Renderer(), platform.Events())

	view, err := registry.Create(viewID, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating view: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting", "view", viewID, "fps", tickRate, "seed", flagSeed)
	phi.Run(p, phi.RealClock{}, tickRate, view)
}
