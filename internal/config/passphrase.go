// Package config provides passphrase hashing for the single-user auth
// gate.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PassphraseConfig holds configuration for access-passphrase hashing and
// verification.
type PassphraseConfig struct {
	BcryptCost int
}

// NewPassphraseConfig creates a passphrase configuration from environment
// variables. It reads BCRYPT_COST (default: 12).
func NewPassphraseConfig() (*PassphraseConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	cfg := &PassphraseConfig{BcryptCost: cost}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PassphraseConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassphrase hashes an access passphrase for storage in config.
func (c *PassphraseConfig) HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

// VerifyPassphrase verifies a passphrase against a stored hash.
func (c *PassphraseConfig) VerifyPassphrase(passphrase, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(passphrase)) == nil
}
