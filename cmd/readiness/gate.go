package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonathan/placement-readiness/internal/gate"
	"github.com/spf13/cobra"
)

var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Manage the test sign-off checklist",
	Long:  "The gate is a fixed list of ten manual test sign-offs. All ten must be checked before the ship step unlocks.",
}

var gateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the checklist",
	RunE:  runGateShow,
}

var gateCheckCmd = &cobra.Command{
	Use:   "check <item>",
	Short: "Check one item (1-10)",
	Args:  cobra.ExactArgs(1),
	RunE:  makeGateToggle(true),
}

var gateUncheckCmd = &cobra.Command{
	Use:   "uncheck <item>",
	Short: "Uncheck one item (1-10)",
	Args:  cobra.ExactArgs(1),
	RunE:  makeGateToggle(false),
}

var gateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck everything",
	RunE:  runGateReset,
}

var gateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether all ten items are checked",
	RunE:  runGateStatus,
}

func init() {
	gateCmd.AddCommand(gateShowCmd, gateCheckCmd, gateUncheckCmd, gateResetCmd, gateStatusCmd)
	rootCmd.AddCommand(gateCmd)
}

func runGateShow(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	printGate(app.gate.Get(ctx))
	return nil
}

func makeGateToggle(value bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		item, err := strconv.Atoi(args[0])
		if err != nil || item < 1 || item > gate.Length {
			return fmt.Errorf("item must be 1-%d", gate.Length)
		}

		ctx := context.Background()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer app.close()

		items := app.gate.Get(ctx)
		items[item-1] = value
		printGate(app.gate.Set(ctx, items))
		return nil
	}
}

func runGateReset(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	printGate(app.gate.Reset(ctx))
	return nil
}

func runGateStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	if app.gate.IsComplete(ctx) {
		fmt.Println("Gate complete: all tests signed off.")
	} else {
		fmt.Println("Gate incomplete.")
	}
	return nil
}

func printGate(items []bool) {
	for i, checked := range items {
		mark := " "
		if checked {
			mark = "x"
		}
		fmt.Printf("  %2d. [%s]\n", i+1, mark)
	}
}
