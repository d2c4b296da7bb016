package mnemonic

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-valkey/internal/wordlist"
	"github.com/tyler-smith/go-bip39"
)

const (
	vector12 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	vector24 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
)

func TestFromEntropy_ZeroVectors(t *testing.T) {
	store := wordlist.Default()

	tests := []struct {
		name    string
		entropy []byte
		want    string
	}{
		{"16 zero bytes", make([]byte, 16), vector12},
		{"32 zero bytes", make([]byte, 32), vector24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEntropy(store, tt.entropy)
			if err != nil {
				t.Fatalf("FromEntropy() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromEntropy() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The codec must agree word-for-word with the reference library for every
// supported entropy size; external wallets recompute the same phrases.
func TestFromEntropy_MatchesReference(t *testing.T) {
	store := wordlist.Default()

	for _, bits := range []int{128, 160, 192, 224, 256} {
		entropy := make([]byte, bits/8)
		if _, err := rand.Read(entropy); err != nil {
			t.Fatal(err)
		}

		got, err := FromEntropy(store, entropy)
		if err != nil {
			t.Fatalf("FromEntropy(%d bits) error: %v", bits, err)
		}
		want, err := bip39.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("reference NewMnemonic error: %v", err)
		}
		if got != want {
			t.Errorf("%d bits: FromEntropy() = %q, reference = %q", bits, got, want)
		}
	}
}

func TestFromEntropy_BadLength(t *testing.T) {
	_, err := FromEntropy(wordlist.Default(), make([]byte, 17))
	if !errors.Is(err, ErrInvalidStrength) {
		t.Errorf("FromEntropy() with 17 bytes: err = %v, want ErrInvalidStrength", err)
	}
}

func TestGenerate(t *testing.T) {
	store := wordlist.Default()

	tests := []struct {
		strength  int
		wordCount int
	}{
		{128, 12},
		{160, 15},
		{192, 18},
		{224, 21},
		{256, 24},
	}

	for _, tt := range tests {
		phrase, err := Generate(store, tt.strength)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", tt.strength, err)
		}
		if got := len(strings.Fields(phrase)); got != tt.wordCount {
			t.Errorf("Generate(%d) word count = %d, want %d", tt.strength, got, tt.wordCount)
		}
		if !Validate(store, phrase) {
			t.Errorf("Generate(%d) produced an invalid phrase", tt.strength)
		}
		if !bip39.IsMnemonicValid(phrase) {
			t.Errorf("Generate(%d) phrase rejected by reference library", tt.strength)
		}
	}
}

func TestGenerate_InvalidStrength(t *testing.T) {
	for _, bits := range []int{0, 64, 129, 512} {
		if _, err := Generate(wordlist.Default(), bits); !errors.Is(err, ErrInvalidStrength) {
			t.Errorf("Generate(%d): err = %v, want ErrInvalidStrength", bits, err)
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	store := wordlist.Default()
	m1, err := Generate(store, 256)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m2, err := Generate(store, 256)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestCheck(t *testing.T) {
	store := wordlist.Default()

	tests := []struct {
		name    string
		phrase  string
		wantErr error
	}{
		{
			name:   "valid 12-word",
			phrase: vector12,
		},
		{
			name:   "valid 24-word",
			phrase: vector24,
		},
		{
			name:   "extra whitespace tolerated by tokenizer",
			phrase: "  " + strings.ReplaceAll(vector12, " ", "   ") + " ",
		},
		{
			name:    "empty string",
			phrase:  "",
			wantErr: ErrWordCount,
		},
		{
			name:    "13 words",
			phrase:  vector12 + " abandon",
			wantErr: ErrWordCount,
		},
		{
			name:    "word not in wordlist",
			phrase:  strings.Replace(vector12, "about", "qwerty", 1),
			wantErr: ErrUnknownWord,
		},
		{
			name:    "checksum mismatch",
			phrase:  strings.Replace(vector12, "about", "abandon", 1),
			wantErr: ErrChecksum,
		},
		{
			name: "adjacent word substitution flips checksum bits",
			// "able" is the wordlist neighbor of "about" minus one.
			phrase:  strings.Replace(vector12, "about", "able", 1),
			wantErr: ErrChecksum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(store, tt.phrase)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Check() error: %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() error: %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheck_UnknownWordDoesNotEchoWord(t *testing.T) {
	store := wordlist.Default()
	phrase := strings.Replace(vector12, "about", "hunter2", 1)

	err := Check(store, phrase)
	if !errors.Is(err, ErrUnknownWord) {
		t.Fatalf("Check() error: %v, want ErrUnknownWord", err)
	}
	if strings.Contains(err.Error(), "hunter2") {
		t.Errorf("error message should not contain the unknown word: %q", err)
	}
}

func TestValidate(t *testing.T) {
	store := wordlist.Default()

	if !Validate(store, vector24) {
		t.Error("Validate() should accept the 24-word vector")
	}
	if Validate(store, "not a valid mnemonic phrase at all") {
		t.Error("Validate() should reject random words")
	}
}
