package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/platform/tui"
	"github.com/vovakirdan/tank-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in menu mode. After a round you return to the menu to play
again.

Controls:
  Up/Down/j/k     - Choose variant
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q/Esc           - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := settings.NewLogger("tankarena")
	if err != nil {
		return err
	}
	defer closeLog()

	store := settings.OpenStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     settings.Seed,
	}
	preset := config.ParsePreset(settings.Preset)

	for {
		res, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg, preset = res.Config, res.Preset

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			if store == nil {
				logger.Warn("scoreboard unavailable without a database")
				continue
			}
			if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}
			continue
		}

		if _, err := settings.Configure(preset); err != nil {
			return err
		}
		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}

		// Fresh seed per round unless one was pinned
		if settings.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("starting", "variant", res.GameID, "preset", preset, "seed", cfg.Seed)
		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
			return err
		}
	}
}
