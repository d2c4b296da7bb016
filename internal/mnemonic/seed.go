package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// Seed derivation parameters fixed by BIP-39.
const (
	seedRounds     = 2048
	seedSaltPrefix = "mnemonic"
)

// Seed derives the 64-byte seed from a mnemonic phrase and optional
// passphrase using PBKDF2-HMAC-SHA512 with 2048 rounds. The phrase bytes
// are used verbatim (whitespace and case matter), salt is
// "mnemonic"+passphrase.
//
// Seed performs no validation; validate externally supplied phrases with
// Check first. Freshly generated phrases need no re-validation.
func Seed(phrase, passphrase string) []byte {
	return pbkdf2.Key([]byte(phrase), []byte(seedSaltPrefix+passphrase), seedRounds, SeedSize, sha512.New)
}
