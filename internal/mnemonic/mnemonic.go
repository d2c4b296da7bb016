// Package mnemonic implements the BIP-39 codec: entropy to mnemonic
// encoding, mnemonic validation, and mnemonic to seed derivation.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-valkey/internal/wordlist"
)

// DefaultStrength is the entropy size for 24-word mnemonics.
const DefaultStrength = 256

var (
	// ErrInvalidStrength means the requested entropy size is not one of
	// 128, 160, 192, 224 or 256 bits.
	ErrInvalidStrength = errors.New("entropy strength must be 128, 160, 192, 224, or 256 bits")

	// ErrWordCount means the phrase does not have 12, 15, 18, 21 or 24 words.
	ErrWordCount = errors.New("mnemonic must have 12, 15, 18, 21, or 24 words")

	// ErrUnknownWord means a word in the phrase is not in the dictionary.
	ErrUnknownWord = errors.New("mnemonic contains a word not in the wordlist")

	// ErrChecksum means the embedded checksum bits do not match the entropy.
	ErrChecksum = errors.New("mnemonic checksum mismatch")
)

// validStrength reports whether bits is an allowed entropy size.
func validStrength(bits int) bool {
	switch bits {
	case 128, 160, 192, 224, 256:
		return true
	}
	return false
}

// Generate draws strength bits of cryptographically secure entropy and
// encodes it as a mnemonic phrase. strength/32*3 words are produced
// (256 bits -> 24 words).
func Generate(store *wordlist.Store, strength int) (string, error) {
	if !validStrength(strength) {
		return "", fmt.Errorf("%w: got %d", ErrInvalidStrength, strength)
	}
	entropy := make([]byte, strength/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return FromEntropy(store, entropy)
}

// FromEntropy encodes entropy bytes as a mnemonic phrase. The checksum is
// the first len(entropy)*8/32 bits of SHA256(entropy); entropy||checksum is
// sliced into consecutive 11-bit groups, each mapped to a dictionary word.
func FromEntropy(store *wordlist.Store, entropy []byte) (string, error) {
	entropyBits := len(entropy) * 8
	if !validStrength(entropyBits) {
		return "", fmt.Errorf("%w: got %d bytes of entropy", ErrInvalidStrength, len(entropy))
	}
	checksumBits := entropyBits / 32
	wordCount := (entropyBits + checksumBits) / 11

	// entropy || first checksumBits of SHA256(entropy), bit-packed
	// big-endian. One extra byte always suffices (checksumBits <= 8).
	digest := sha256.Sum256(entropy)
	buf := make([]byte, 0, len(entropy)+1)
	buf = append(buf, entropy...)
	buf = append(buf, digest[0])

	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		words[i] = store.Word(readBits11(buf, i*11))
	}
	return strings.Join(words, " "), nil
}

// Check validates a mnemonic phrase against the dictionary and its embedded
// checksum. It returns nil for a valid phrase, or the specific failure:
// ErrWordCount, ErrUnknownWord (with the word's position, never its
// content), or ErrChecksum.
func Check(store *wordlist.Store, phrase string) error {
	words := strings.Fields(phrase)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return fmt.Errorf("%w: got %d", ErrWordCount, len(words))
	}

	totalBits := len(words) * 11
	checksumBits := len(words) / 3
	entropyBits := totalBits - checksumBits

	buf := make([]byte, (totalBits+7)/8)
	for i, w := range words {
		idx, ok := store.Index(w)
		if !ok {
			return fmt.Errorf("%w: word %d", ErrUnknownWord, i+1)
		}
		writeBits11(buf, i*11, idx)
	}

	entropy := buf[:entropyBits/8]
	digest := sha256.Sum256(entropy)
	for b := 0; b < checksumBits; b++ {
		if bitAt(buf, entropyBits+b) != bitAt(digest[:], b) {
			return ErrChecksum
		}
	}
	return nil
}

// Validate reports whether a mnemonic phrase is well-formed per BIP-39
// (correct word count, known words, matching checksum).
func Validate(store *wordlist.Store, phrase string) bool {
	return Check(store, phrase) == nil
}

// bitAt returns the bit at position off (big-endian within each byte).
func bitAt(buf []byte, off int) byte {
	return (buf[off/8] >> (7 - uint(off%8))) & 1
}

// readBits11 extracts the 11-bit big-endian group starting at bit off.
func readBits11(buf []byte, off int) int {
	var v int
	for b := 0; b < 11; b++ {
		v = v<<1 | int(bitAt(buf, off+b))
	}
	return v
}

// writeBits11 stores idx as an 11-bit big-endian group starting at bit off.
func writeBits11(buf []byte, off int, idx int) {
	for b := 0; b < 11; b++ {
		if idx&(1<<(10-uint(b))) != 0 {
			buf[(off+b)/8] |= 1 << (7 - uint((off+b)%8))
		}
	}
}
