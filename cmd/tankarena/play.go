package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-arena/internal/app"
	"github.com/vovakirdan/tank-arena/internal/arena"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/platform/session"
	"github.com/vovakirdan/tank-arena/internal/platform/sound"
	"github.com/vovakirdan/tank-arena/internal/platform/tui"
	"github.com/vovakirdan/tank-arena/internal/platform/window"
	"github.com/vovakirdan/tank-arena/internal/registry"
)

var (
	flagWindow bool
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start a round of the given variant.

Controls:
  Left/Right, A/D  - Drive
  Up, W            - Climb (descent only)
  Space            - Jump
  S                - Shoot
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Fewer enemies, gentler collisions
  normal  - The default balance
  hard    - More enemies that speed up faster and hit harder

Examples:
  tankarena play drift
  tankarena play descent --difficulty easy
  tankarena play drift --window --sound
  tankarena play drift --config ./my-arena.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, args []string) error {
	id := args[0]
	if err := app.CheckVariant(id); err != nil {
		return err
	}

	logger, closeLog, err := settings.NewLogger("tankarena")
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := settings.LoadConfig(); err != nil {
		return fmt.Errorf("invalid arena config: %w", err)
	}

	// Terminal size is only a starting point, the model follows resizes
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     seed,
	}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("create %s: %w", id, err)
	}

	store := settings.OpenStore(logger)
	if store != nil {
		defer store.Close()
	}

	var cues session.CueSink
	if flagSound {
		player := sound.New(logger)
		defer player.Close()
		cues = player
	}

	logger.Info("starting", "variant", id, "seed", seed, "window", flagWindow)

	if flagWindow {
		ag, ok := game.(*arena.Game)
		if !ok {
			return fmt.Errorf("%s cannot run in a window", id)
		}
		rec := session.NewRecorder(id, seed, session.Options{Store: store, Logger: logger, Cues: cues})
		return window.Run(ag, runtime, rec)
	}

	return tui.Run(game, runtime, tui.Options{Store: store, Logger: logger, Cues: cues})
}
