package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every stored entry against the canonical schema",
	Long:  "Strictly validate the stored history against the canonical entry schema. Legacy-shaped entries are reported; the lenient read path still accepts them.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
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

	invalid := 0
	for _, entry := range entries {
		raw, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
		}
		if err := schema.ValidateCanonical(raw); err != nil {
			invalid++
			fmt.Printf("entry %s:\n%v\n", entry.ID, err)
		}
	}

	fmt.Printf("%d entries checked, %d invalid, %d corrupted skipped\n",
		len(entries), invalid, corrupted)
	if invalid > 0 {
		return fmt.Errorf("%d entries failed strict validation", invalid)
	}
	return nil
}
