package main

import (
	"context"
	"fmt"

	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved analyses",
}

var historyJSON bool

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one analysis by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent analysis",
	RunE:  runHistoryLatest,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "Print JSON instead of a summary")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyLatestCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
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

	if historyJSON {
		return printJSON(map[string]any{
			"entries":        entries,
			"corruptedCount": corrupted,
		})
	}

	if len(entries) == 0 {
		fmt.Println("No analyses yet.")
		return nil
	}
	for _, entry := range entries {
		label := entry.Company
		if label == "" {
			label = "(no company)"
		}
		fmt.Printf("%s  %3d/100  %-24s %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04"), entry.FinalScore, label, entry.ID)
	}
	if corrupted > 0 {
		fmt.Printf("(%d corrupted entries skipped)\n", corrupted)
	}
	return nil
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	entry, err := app.store.GetByID(ctx, args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no analysis with id %s", args[0])
	}
	return printEntry(entry)
}

func runHistoryLatest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	entry, err := app.store.GetLatest(ctx)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Println("No analyses yet.")
		return nil
	}
	return printEntry(entry)
}

func printEntry(entry *schema.AnalysisEntry) error {
	if historyJSON {
		return printJSON(schema.NormalizeForView(entry))
	}
	printSummary(entry)
	return nil
}
