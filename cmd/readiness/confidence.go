package main

import (
	"context"
	"fmt"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/spf13/cobra"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Toggle per-skill confidence and rescore",
	Long:  "Mark a skill as known or needing practice on a saved analysis. The live readiness score is recomputed and persisted.",
	RunE:  runConfidence,
}

var (
	confidenceID    string
	confidenceSkill string
	confidenceState string
)

func init() {
	confidenceCmd.Flags().StringVar(&confidenceID, "id", "", "Entry id (default: latest)")
	confidenceCmd.Flags().StringVar(&confidenceSkill, "skill", "", "Skill label as shown in the entry")
	confidenceCmd.Flags().StringVar(&confidenceState, "state", "", "know | practice")
	_ = confidenceCmd.MarkFlagRequired("skill")
	_ = confidenceCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(confidenceCmd)
}

func runConfidence(_ *cobra.Command, _ []string) error {
	if confidenceState != analysis.ConfidenceKnow && confidenceState != analysis.ConfidencePractice {
		return fmt.Errorf("state must be %q or %q", analysis.ConfidenceKnow, analysis.ConfidencePractice)
	}

	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	id := confidenceID
	if id == "" {
		latest, err := app.store.GetLatest(ctx)
		if err != nil {
			return err
		}
		if latest == nil {
			return fmt.Errorf("no analyses yet")
		}
		id = latest.ID
	}

	updated, err := app.store.Update(ctx, id, func(entry *schema.AnalysisEntry) {
		entry.SetConfidence(confidenceSkill, confidenceState)
	})
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("no analysis with id %s", id)
	}

	fmt.Printf("%s -> %s\n", confidenceSkill, confidenceState)
	fmt.Printf("Readiness score: %d/100 (base %d)\n", updated.FinalScore, updated.BaseScore)
	return nil
}
