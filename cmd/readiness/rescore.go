package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Recompute live scores across all saved analyses",
	Long:  "Re-derive every entry's live score from its base score and confidence map. Useful after restoring a backup or editing the store by hand.",
	RunE:  runRescore,
}

func init() {
	rootCmd.AddCommand(rescoreCmd)
}

func runRescore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	entries, corrupted, err := app.store.ListAll(ctx)
	if err != nil {
		return err
	}

	// Score recomputation is pure, so it can fan out; the store writes
	// stay on this goroutine because updates are whole-list rewrites.
	scores := make([]int, len(entries))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, entry := range entries {
		g.Go(func() error {
			scores[i] = entry.Rescore()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	changed := 0
	for i, entry := range entries {
		if scores[i] == entry.FinalScore {
			continue
		}
		score := scores[i]
		if _, err := app.store.Update(ctx, entry.ID, func(e *schema.AnalysisEntry) {
			e.FinalScore = score
		}); err != nil {
			return err
		}
		changed++
	}

	fmt.Printf("Rescored %d entries, %d changed", len(entries), changed)
	if corrupted > 0 {
		fmt.Printf(", %d corrupted skipped", corrupted)
	}
	fmt.Println()
	return nil
}
