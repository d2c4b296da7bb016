// valkey derives consensus-engine validator identity keys from BIP-39
// mnemonic phrases and writes them as priv_validator_key.json.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/Klingon-tech/klingnet-valkey/config"
	"github.com/Klingon-tech/klingnet-valkey/internal/backup"
	"github.com/Klingon-tech/klingnet-valkey/internal/log"
	"github.com/Klingon-tech/klingnet-valkey/internal/mnemonic"
	"github.com/Klingon-tech/klingnet-valkey/internal/validator"
	"github.com/Klingon-tech/klingnet-valkey/internal/wordlist"
	"github.com/Klingon-tech/klingnet-valkey/pkg/crypto"
	"golang.org/x/term"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  valkey generate [output_file]           generate a new mnemonic and key
  valkey "<mnemonic phrase>" [output_file]  derive a key from an existing mnemonic
  valkey backup "<mnemonic phrase>" <file>  write an encrypted mnemonic backup
  valkey restore <file> [output_file]     derive a key from an encrypted backup

Flags (before the mode):
  --strength N      entropy bits for generate: 128, 160, 192, 224, 256 (default 256)
  --passphrase      prompt for an optional BIP-39 passphrase
  --wordlist PATH   use a custom 2048-word dictionary file
  --log-level L     debug, info, warn, error (default info)
  --json-logs       emit logs as JSON

The default output file is priv_validator_key.json.`)
}

func main() {
	cfg := config.Default()

	// Scan for flags before the mode, klingnet-cli style.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--strength" && len(args) > 1:
			cfg.Strength = parseStrength(args[1])
			args = args[2:]
		case strings.HasPrefix(args[0], "--strength="):
			cfg.Strength = parseStrength(args[0][len("--strength="):])
			args = args[1:]
		case args[0] == "--wordlist" && len(args) > 1:
			cfg.WordlistPath = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--wordlist="):
			cfg.WordlistPath = args[0][len("--wordlist="):]
			args = args[1:]
		case args[0] == "--passphrase":
			cfg.PromptPassphrase = true
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(cfg.Log.Level, cfg.Log.JSON)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	mode := args[0]
	modeArgs := args[1:]

	switch mode {
	case "generate":
		cmdGenerate(cfg, modeArgs)
	case "backup":
		cmdBackup(cfg, modeArgs)
	case "restore":
		cmdRestore(cfg, modeArgs)
	case "help", "--help", "-h":
		usage()
	default:
		// The mode itself is the mnemonic phrase.
		cmdDerive(cfg, mode, modeArgs)
	}
}

// cmdGenerate creates a fresh mnemonic, prints it once, and derives the key.
func cmdGenerate(cfg *config.Config, args []string) {
	store := loadStore(cfg)
	output := outputPath(cfg, args)

	phrase, err := mnemonic.Generate(store, cfg.Strength)
	if err != nil {
		log.Mnemonic.Error().Err(err).Msg("mnemonic generation failed")
		os.Exit(1)
	}

	fmt.Println("Generated mnemonic (SAVE THIS SECURELY):")
	fmt.Println(phrase)
	fmt.Println()

	derive(cfg, phrase, output)
}

// cmdDerive validates a caller-supplied mnemonic and derives the key.
func cmdDerive(cfg *config.Config, phrase string, args []string) {
	store := loadStore(cfg)
	output := outputPath(cfg, args)

	if err := mnemonic.Check(store, phrase); err != nil {
		// The error names the failing stage but never the phrase itself.
		log.Mnemonic.Error().Err(err).Msg("invalid mnemonic phrase")
		os.Exit(1)
	}

	derive(cfg, phrase, output)
}

// cmdBackup validates a mnemonic and writes an encrypted backup file.
func cmdBackup(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, `usage: valkey backup "<mnemonic phrase>" <file>`)
		os.Exit(1)
	}
	phrase, path := args[0], args[1]

	store := loadStore(cfg)
	if err := mnemonic.Check(store, phrase); err != nil {
		log.Mnemonic.Error().Err(err).Msg("invalid mnemonic phrase")
		os.Exit(1)
	}

	password := readNewPassword("Backup password: ")
	if err := backup.Write(path, phrase, password, backup.DefaultParams()); err != nil {
		log.Backup.Error().Err(err).Msg("backup failed")
		os.Exit(1)
	}
	fmt.Printf("Encrypted mnemonic backup written to %s\n", path)
}

// cmdRestore decrypts a backup and runs the derivation pipeline on it.
func cmdRestore(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: valkey restore <file> [output_file]")
		os.Exit(1)
	}
	path := args[0]
	output := outputPath(cfg, args[1:])

	password, err := readPassword("Backup password: ")
	if err != nil {
		log.Backup.Error().Err(err).Msg("read password")
		os.Exit(1)
	}
	phrase, err := backup.Read(path, password)
	if err != nil {
		log.Backup.Error().Err(err).Msg("restore failed")
		os.Exit(1)
	}

	store := loadStore(cfg)
	if err := mnemonic.Check(store, phrase); err != nil {
		log.Mnemonic.Error().Err(err).Msg("backup contains an invalid mnemonic")
		os.Exit(1)
	}

	derive(cfg, phrase, output)
}

// derive runs the seed -> key pair -> record pipeline and writes the record.
func derive(cfg *config.Config, phrase, output string) {
	passphrase := ""
	if cfg.PromptPassphrase {
		passphrase = string(readNewPassword("BIP-39 passphrase: "))
	}

	seed := mnemonic.Seed(phrase, passphrase)
	keyPair, err := crypto.DeriveKeyPair(crypto.Ed25519Provider{}, seed)
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		log.Keys.Error().Err(err).Msg("key derivation failed")
		os.Exit(1)
	}

	record, err := validator.BuildRecord(keyPair)
	if err != nil {
		log.Keys.Error().Err(err).Msg("record assembly failed")
		os.Exit(1)
	}
	if err := record.Save(output); err != nil {
		log.Keys.Error().Err(err).Msg("write record")
		os.Exit(1)
	}

	fmt.Printf("Created validator key file: %s\n", output)
	fmt.Printf("  Address: %s\n", record.Address)
	fmt.Printf("  PubKey:  %s\n", record.PubKey.Value)
	fmt.Println()
	fmt.Println("IMPORTANT: keep your mnemonic phrase secure.")
	fmt.Println("It can be used to recover this validator key.")
}

// loadStore returns the configured dictionary: a custom file when
// --wordlist is given, the built-in English list otherwise.
func loadStore(cfg *config.Config) *wordlist.Store {
	if cfg.WordlistPath == "" {
		log.Wordlist.Debug().Msg("using built-in English wordlist")
		return wordlist.Default()
	}
	store, err := wordlist.Load(cfg.WordlistPath)
	if err != nil {
		log.Wordlist.Error().Err(err).Str("path", cfg.WordlistPath).Msg("wordlist load failed")
		os.Exit(1)
	}
	log.Wordlist.Debug().Str("path", cfg.WordlistPath).Msg("wordlist loaded")
	return store
}

// outputPath picks the record path: the first positional argument or the
// configured default.
func outputPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.OutputFile
}

func parseStrength(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --strength value %q\n", s)
		os.Exit(1)
	}
	return n
}

// ── Password helpers ─────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// readNewPassword prompts twice and requires both entries to match.
func readNewPassword(prompt string) []byte {
	first, err := readPassword(prompt)
	if err != nil {
		log.Error().Err(err).Msg("read password")
		os.Exit(1)
	}
	second, err := readPassword("Confirm: ")
	if err != nil {
		log.Error().Err(err).Msg("read password")
		os.Exit(1)
	}
	if !bytes.Equal(first, second) {
		log.Error().Msg("entries do not match")
		os.Exit(1)
	}
	return first
}
