package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-arena/internal/platform/tui"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores of every variant",
	Long: `Open an interactive high score table.

Controls:
  Tab/Left/Right  - Switch variant
  Up/Down         - Scroll
  Esc/Q           - Close`,
	RunE: runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	if settings.DBPath == "" {
		return errors.New("no scores database (--db is empty)")
	}
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(store, width, height)
}
