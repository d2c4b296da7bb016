package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39/wordlists"
)

func TestDefault(t *testing.T) {
	store := Default()

	if got, ok := store.Index("abandon"); !ok || got != 0 {
		t.Errorf(`Index("abandon") = %d, %v, want 0, true`, got, ok)
	}
	if got, ok := store.Index("zoo"); !ok || got != Size-1 {
		t.Errorf(`Index("zoo") = %d, %v, want %d, true`, got, ok, Size-1)
	}
	if got := store.Word(3); got != "about" {
		t.Errorf("Word(3) = %q, want %q", got, "about")
	}
}

func TestDefault_Roundtrip(t *testing.T) {
	store := Default()
	for i := 0; i < Size; i++ {
		word := store.Word(i)
		idx, ok := store.Index(word)
		if !ok || idx != i {
			t.Fatalf("Index(Word(%d)) = %d, %v, want %d, true", i, idx, ok, i)
		}
	}
}

func TestIndex_UnknownWord(t *testing.T) {
	store := Default()
	if _, ok := store.Index("notaword"); ok {
		t.Error(`Index("notaword") should report false`)
	}
}

func TestNew_WrongCount(t *testing.T) {
	_, err := New([]string{"one", "two", "three"})
	if !errors.Is(err, ErrWordCount) {
		t.Errorf("New() with 3 words: err = %v, want ErrWordCount", err)
	}
}

func TestNew_Duplicate(t *testing.T) {
	words := make([]string, Size)
	copy(words, wordlists.English)
	words[100] = words[99]

	_, err := New(words)
	if !errors.Is(err, ErrWordCount) {
		t.Errorf("New() with duplicate: err = %v, want ErrWordCount", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.txt")
	// Trailing newline plus a blank line; both must be ignored.
	content := strings.Join(wordlists.English, "\n") + "\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, ok := store.Index("zebra"); !ok {
		t.Error(`loaded store should contain "zebra"`)
	} else if store.Word(got) != "zebra" {
		t.Errorf("Word(Index(zebra)) = %q", store.Word(got))
	}
}

func TestLoad_WrongCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrWordCount) {
		t.Errorf("Load() short file: err = %v, want ErrWordCount", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() missing file: err = %v, want ErrNotFound", err)
	}
}
