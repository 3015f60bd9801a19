// internal/words/letter.go
//
// Letter model for the hangman engine.
// Defines:
//   - Letter: one of the 26 guessable symbols, or Blank for a space.
//   - FromChar / FromString: case-insensitive parsing.
//   - Alphabet: the full ordered universe of letters.
//
// Parsing is the only place letters are validated; everything downstream
// (Phrase, game state) can assume letters are already well formed.
package words

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Letter is an upper-case ASCII letter 'A'..'Z'.
// The zero value, Blank, stands for the absence of a letter (a space between words).
type Letter byte

// Blank is the absent letter. It renders as a single space.
const Blank Letter = 0

const alphabetSize = 26

var (
	// ErrInvalidLetter is returned when input does not name one of the 26 letters.
	ErrInvalidLetter = errors.New("invalid letter")
	// ErrEmptyPhrase is returned when a phrase has no letters at all.
	ErrEmptyPhrase = errors.New("phrase must contain at least one letter")
)

// FromChar maps c to a Letter, case-insensitively.
// A space maps to Blank without error.
func FromChar(c rune) (Letter, error) {
	if c == ' ' {
		return Blank, nil
	}
	return fromRune(c)
}

// FromString maps a single-character string to a Letter.
// Unlike FromChar, a space is not special: " " is rejected like any other non-letter.
func FromString(s string) (Letter, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Blank, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return fromRune(r)
}

func fromRune(r rune) (Letter, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r), nil
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a' + 'A'), nil
	}
	return Blank, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
}

// Valid reports whether l is one of the 26 letters (Blank is not).
func (l Letter) Valid() bool { return l >= 'A' && l <= 'Z' }

// IsBlank reports whether l is the absent letter.
func (l Letter) IsBlank() bool { return l == Blank }

// String renders the letter as its symbol, or a single space for Blank.
func (l Letter) String() string {
	if !l.Valid() {
		return " "
	}
	return string(rune(l))
}

// index maps a valid letter to 0..25.
func (l Letter) index() int { return int(l - 'A') }

// Alphabet returns all 26 letters in order.
func Alphabet() []Letter {
	out := make([]Letter, alphabetSize)
	for i := range out {
		out[i] = Letter('A' + i)
	}
	return out
}
