package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arena/internal/app"
	"github.com/vovakirdan/tank-arena/internal/registry"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the best finished rounds of the given variant.

Examples:
  tankarena scores drift
  tankarena scores descent --limit 20
  tankarena scores drift --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	id := args[0]
	if err := app.CheckVariant(id); err != nil {
		return err
	}
	if settings.DBPath == "" {
		return errors.New("no scores database (--db is empty)")
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(id); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", id)
		return nil
	}

	rounds, err := store.TopRounds(id, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	title := id
	for _, g := range registry.List() {
		if g.ID == id {
			title = g.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tankarena play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-8d  %-5d  %-8d  %s\n", i+1, r.Score, r.Level, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summarize(id)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f  Max level: %d\n",
			sum.Rounds, sum.Best, sum.Average, sum.MaxLevel)
	}
	return nil
}
