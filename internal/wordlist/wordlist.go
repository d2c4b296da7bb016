// Package wordlist loads and indexes the BIP-39 dictionary used to encode
// entropy as mnemonic phrases.
package wordlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the required number of words in a BIP-39 dictionary. Each word
// encodes exactly 11 bits (2^11 = 2048).
const Size = 2048

// DefaultFilename is the fallback wordlist file looked up next to the
// executable when no explicit path resolves.
const DefaultFilename = "english.txt"

var (
	// ErrNotFound means no wordlist file could be located.
	ErrNotFound = errors.New("wordlist file not found")

	// ErrWordCount means the loaded dictionary does not have exactly 2048
	// unique words.
	ErrWordCount = errors.New("wordlist must contain exactly 2048 unique words")
)

// Store is an immutable, indexed BIP-39 dictionary. Word lookup in both
// directions is O(1) via a precomputed reverse map.
type Store struct {
	words []string
	index map[string]int
}

// New builds a Store from an ordered word slice. Fails unless the slice
// holds exactly 2048 unique words.
func New(words []string) (*Store, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrWordCount, len(words))
	}
	index := make(map[string]int, Size)
	for i, w := range words {
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word at index %d", ErrWordCount, i)
		}
		index[w] = i
	}
	owned := make([]string, Size)
	copy(owned, words)
	return &Store{words: owned, index: index}, nil
}

// Default returns a Store backed by the canonical English BIP-39 list.
func Default() *Store {
	s, err := New(wordlists.English)
	if err != nil {
		// The embedded list is a compile-time constant of exactly 2048
		// unique words.
		panic(fmt.Sprintf("embedded English wordlist invalid: %v", err))
	}
	return s
}

// Load reads a newline-delimited wordlist file. When path does not resolve
// directly it is retried relative to the executable's directory, and
// finally DefaultFilename in that directory is tried.
func Load(path string) (*Store, error) {
	resolved, err := resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, resolved, err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	store, err := New(words)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	return store, nil
}

// resolve finds the first existing candidate for path: the path as given
// (absolute or CWD-relative), then relative to the executable's directory,
// then DefaultFilename in the executable's directory.
func resolve(path string) (string, error) {
	candidates := []string{path}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(exeDir, path),
			filepath.Join(exeDir, DefaultFilename),
		)
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s (also tried executable directory)", ErrNotFound, path)
}

// Index returns the position of word in the dictionary, or false if the
// word is not part of it.
func (s *Store) Index(word string) (int, bool) {
	i, ok := s.index[word]
	return i, ok
}

// Word returns the dictionary word at index i. The index must be in
// [0, 2048); every 11-bit group satisfies this by construction.
func (s *Store) Word(i int) string {
	return s.words[i]
}
