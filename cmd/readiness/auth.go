package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Auth utilities",
}

var authHashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash an access passphrase for ACCESS_PASSPHRASE_HASH",
	Long:  "Read a passphrase from stdin and print its bcrypt hash. Put the hash in ACCESS_PASSPHRASE_HASH (or the config file) to enable API auth.",
	RunE:  runAuthHash,
}

func init() {
	authCmd.AddCommand(authHashCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthHash(_ *cobra.Command, _ []string) error {
	passphraseConfig, err := config.NewPassphraseConfig()
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, "Passphrase: ")
	reader := bufio.NewReader(os.Stdin)
	raw, err := reader.ReadString('\n')
	if err != nil && raw == "" {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	hash, err := passphraseConfig.HashPassphrase(strings.TrimRight(raw, "\r\n"))
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
