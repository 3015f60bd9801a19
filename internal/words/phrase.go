// internal/words/phrase.go
//
// Phrase is the secret (or a guess at it): an ordered run of letters where
// Blank marks the gap between words. Phrases are immutable once built; the
// set of distinct letters is computed once so membership tests are O(1).

package words

import (
	"fmt"
	"strings"
)

// Revealer is anything that knows whether a round is over.
// game.Status satisfies it.
type Revealer interface {
	IsOver() bool
}

// Phrase is an ordered, immutable sequence of letters and blanks.
type Phrase struct {
	letters []Letter
	unique  LetterSet
}

// NewPhrase builds a Phrase from letters in spelling order.
// The slice is copied; later changes to it do not affect the Phrase.
func NewPhrase(letters []Letter) Phrase {
	p := Phrase{letters: append([]Letter(nil), letters...)}
	for _, l := range p.letters {
		p.unique.Add(l)
	}
	return p
}

// ParsePhrase converts free text into a Phrase, character by character via
// FromChar. Leading and trailing spaces are dropped and inner runs of spaces
// collapse to one, so a secret and a guess typed with different spacing
// spell the same phrase. Any character other than a letter or a space fails
// with ErrInvalidLetter; text with no letters fails with ErrEmptyPhrase.
func ParsePhrase(s string) (Phrase, error) {
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == ' ' }), " ")
	letters := make([]Letter, 0, len(s))
	for _, c := range s {
		l, err := FromChar(c)
		if err != nil {
			return Phrase{}, fmt.Errorf("%w: only letters and spaces are allowed in a phrase", err)
		}
		letters = append(letters, l)
	}
	p := NewPhrase(letters)
	if !p.HasLetters() {
		return Phrase{}, ErrEmptyPhrase
	}
	return p, nil
}

// MustParsePhrase is ParsePhrase for literals known to be valid.
func MustParsePhrase(s string) Phrase {
	p, err := ParsePhrase(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Contains reports whether l appears anywhere in the phrase.
func (p Phrase) Contains(l Letter) bool { return p.unique.Contains(l) }

// AllLettersGuessed reports whether every distinct letter of the phrase is in guessed.
// A phrase with no letters is trivially fully guessed.
func (p Phrase) AllLettersGuessed(guessed LetterSet) bool {
	return guessed.ContainsAll(p.unique)
}

// HasLetters reports whether the phrase holds at least one non-blank letter.
func (p Phrase) HasLetters() bool { return !p.unique.IsEmpty() }

// Unique returns the set of distinct letters in the phrase.
func (p Phrase) Unique() LetterSet { return p.unique }

// Letters returns a copy of the letters in spelling order.
func (p Phrase) Letters() []Letter { return append([]Letter(nil), p.letters...) }

// Len is the number of positions, blanks included.
func (p Phrase) Len() int { return len(p.letters) }

// Raw spells the phrase out in full, with blanks as spaces.
func (p Phrase) Raw() string {
	var b strings.Builder
	b.Grow(len(p.letters))
	for _, l := range p.letters {
		b.WriteString(l.String())
	}
	return b.String()
}

// String is Raw.
func (p Phrase) String() string { return p.Raw() }

// Masked spells the phrase with every letter not yet in correct replaced by
// hidden. Blanks always render as spaces, and once status reports the round
// is over every letter is revealed.
func (p Phrase) Masked(correct LetterSet, status Revealer, hidden string) string {
	reveal := status != nil && status.IsOver()
	var b strings.Builder
	for _, l := range p.letters {
		if l.IsBlank() || reveal || correct.Contains(l) {
			b.WriteString(l.String())
			continue
		}
		b.WriteString(hidden)
	}
	return b.String()
}

// Words splits the phrase on blanks, dropping empty runs.
func (p Phrase) Words() []string {
	return strings.Fields(p.Raw())
}

// Equal compares two phrases by spelling.
func (p Phrase) Equal(other Phrase) bool { return p.Raw() == other.Raw() }

// MarshalText encodes the phrase as its raw spelling.
func (p Phrase) MarshalText() ([]byte, error) { return []byte(p.Raw()), nil }

// UnmarshalText parses text with ParsePhrase.
func (p *Phrase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhrase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
