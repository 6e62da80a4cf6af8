// tankarena is a side-view tank shooter for the terminal and the desktop.
//
// Usage:
//
//	tankarena list               - List arena variants
//	tankarena menu               - Pick a variant and difficulty interactively
//	tankarena play <variant>     - Play a variant
//	tankarena scores <variant>   - Show high scores for a variant
//	tankarena scoreboard         - Browse high scores interactively
//	tankarena config             - Print the effective arena config
//
// Headless rounds run through the separate tankarena-sim binary.
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.tankarena/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: ~/.tankarena/tankarena.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arena/internal/app"
)

var settings app.Settings

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tankarena",
	Short: "Tank Arena - a side-view tank shooter",
	Long: `Tank Arena puts you in a tank on a scrolling battlefield. Shoot the
enemies, pick up repair kits and survive as the levels speed up.

Two variants are available:
  drift    - enemies cross the field from the right
  descent  - enemies drop from the sky and fire back

Examples:
  tankarena list
  tankarena play drift
  tankarena play descent --difficulty hard --window
  tankarena scores descent`,
	SilenceUsage: true,
}

func init() {
	settings.Bind(rootCmd, "~/.tankarena/tankarena.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(configCmd)
}
