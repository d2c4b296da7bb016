// Package config holds runtime configuration for the validator key tool.
package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-valkey/internal/mnemonic"
	"github.com/Klingon-tech/klingnet-valkey/internal/validator"
)

// Config holds the settings shared by all invocation modes.
type Config struct {
	// OutputFile is where the validator record is written.
	OutputFile string

	// WordlistPath selects a dictionary file. Empty means the built-in
	// English list.
	WordlistPath string

	// Strength is the entropy size in bits for generated mnemonics.
	Strength int

	// PromptPassphrase enables the hidden BIP-39 passphrase prompt.
	PromptPassphrase bool

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	JSON  bool
}

// Default returns the default configuration: 24-word mnemonics, built-in
// wordlist, the engine's standard record filename.
func Default() *Config {
	return &Config{
		OutputFile: validator.DefaultFilename,
		Strength:   mnemonic.DefaultStrength,
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// Validate checks settings that would otherwise fail mid-pipeline.
func (c *Config) Validate() error {
	switch c.Strength {
	case 128, 160, 192, 224, 256:
	default:
		return fmt.Errorf("invalid strength %d: must be 128, 160, 192, 224, or 256", c.Strength)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	return nil
}
