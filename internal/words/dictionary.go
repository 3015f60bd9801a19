// internal/words/dictionary.go
//
// Word-validity lookups for secret phrases.
//
// Responsibilities:
//   - Load a newline-delimited word list from a configured path, or fall back
//     to the embedded default list from the assets package.
//   - Answer IsValidWord / ValidatePhrase for the input layer.
//   - Supply a random word for front ends that start rounds without a setter.
//
// A dictionary that failed to load is empty, and an empty dictionary
// accepts every word: validation is skipped rather than blocking play.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrUnknownWord is returned by ValidatePhrase for a word not in the dictionary.
var ErrUnknownWord = errors.New("unknown word")

// fallbackWord is what Random returns when there is nothing to choose from.
const fallbackWord = "hangman"

// Dictionary is a read-only set of lowercase words. Safe for concurrent reads.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// NewDictionary builds a dictionary from words, normalizing to lowercase and
// dropping anything that is not purely alphabetic.
func NewDictionary(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	return d
}

// LoadDictionary reads one word per line from path.
// On failure it returns an empty (permissive) dictionary along with the error,
// so callers can report the problem and keep playing without validation.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewDictionary(nil), fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()
	list, err := assets.ReadLines(f)
	if err != nil {
		return NewDictionary(nil), fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return NewDictionary(list), nil
}

// EmbeddedDictionary returns the default word list shipped in the binary.
func EmbeddedDictionary() (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return NewDictionary(nil), fmt.Errorf("embedded dictionary: %w", err)
	}
	return NewDictionary(list), nil
}

// IsValidWord reports whether w is a known word (case-insensitive).
// Every word is valid when the dictionary is empty.
func (d *Dictionary) IsValidWord(w string) bool {
	if d.Len() == 0 {
		return true
	}
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// ValidatePhrase checks every word of p and reports the first unknown one.
func (d *Dictionary) ValidatePhrase(p Phrase) error {
	for _, w := range p.Words() {
		if !d.IsValidWord(w) {
			return fmt.Errorf("%w: %q", ErrUnknownWord, strings.ToLower(w))
		}
	}
	return nil
}

// Random returns a uniformly chosen word using crypto/rand.
func (d *Dictionary) Random() string {
	if d.Len() == 0 {
		return fallbackWord
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		return d.list[0]
	}
	return d.list[n.Int64()]
}

// Words returns the words in load order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return d.list
}

// Len is the number of distinct words loaded.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
