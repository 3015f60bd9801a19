// internal/game/turn.go
//
// One guess submitted by a player.
// Responsibilities:
//   - Turn: a letter guess or a whole-phrase guess, selected by Kind.
//   - ParseTurn: turn raw player input into a Turn.

package game

import (
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/words"
)

// TurnKind discriminates the payload of a Turn.
type TurnKind int

const (
	GuessedLetter TurnKind = iota + 1
	GuessedPhrase
)

func (k TurnKind) String() string {
	switch k {
	case GuessedLetter:
		return "letter"
	case GuessedPhrase:
		return "phrase"
	}
	return "unknown"
}

// Turn is one guess: a single letter or a whole phrase. Exactly one payload
// is meaningful, selected by Kind. Build turns with LetterGuess or PhraseGuess.
type Turn struct {
	Kind   TurnKind
	Letter words.Letter
	Phrase words.Phrase
}

// LetterGuess returns a turn guessing l.
func LetterGuess(l words.Letter) Turn { return Turn{Kind: GuessedLetter, Letter: l} }

// PhraseGuess returns a turn guessing p.
func PhraseGuess(p words.Phrase) Turn { return Turn{Kind: GuessedPhrase, Phrase: p} }

// ParseTurn interprets raw player input. A single character is a letter
// guess; anything longer is a phrase guess. Surrounding whitespace is ignored.
func ParseTurn(input string) (Turn, error) {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) == 1 {
		l, err := words.FromString(input)
		if err != nil {
			return Turn{}, err
		}
		return LetterGuess(l), nil
	}
	p, err := words.ParsePhrase(input)
	if err != nil {
		return Turn{}, err
	}
	return PhraseGuess(p), nil
}

// String renders the guess, e.g. "letter E" or "phrase \"BIG CAT\"".
func (t Turn) String() string {
	switch t.Kind {
	case GuessedLetter:
		return "letter " + t.Letter.String()
	case GuessedPhrase:
		return "phrase " + `"` + t.Phrase.Raw() + `"`
	}
	return "unknown turn"
}
