// internal/game/state.go
//
// Core transition logic for a single hangman round.
// Responsibilities:
//   - Hold everything a round knows: the secret, the status, and the
//     partitions of guessed letters and wrong phrases.
//   - Apply one Turn as a pure function (State, Turn) -> State, so the rules
//     can be exercised without any I/O.
//
// State transitions:
//   - Starting --Begin--> Guessing.
//   - Guessing --Apply--> Guessing | TooManyWrongGuesses |
//     GuessedAllLettersCorrectly | GuessedPhraseCorrectly.
//   - Terminal states never change; Apply returns ErrGameOver.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/hangman/internal/words"
)

var (
	// ErrUnknownTurnType signals a Turn whose Kind is neither letter nor phrase.
	// It is a programming error, not something to retry.
	ErrUnknownTurnType = errors.New("unknown turn type")
	// ErrGameOver is returned when a turn is applied to a finished round.
	ErrGameOver = errors.New("game finished")
)

// State is a snapshot of one round. It is a value: Apply returns a new State
// and never mutates the receiver.
type State struct {
	Phrase       words.Phrase
	Status       Status
	Available    words.LetterSet // letters not yet guessed
	Correct      words.LetterSet // guessed letters found in the phrase
	WrongLetters words.LetterSet // guessed letters not in the phrase
	WrongPhrases []words.Phrase  // wrong phrase guesses, unique by spelling, in guess order
}

// NewState starts a round for phrase with every letter available.
// A phrase without letters could never be guessed letter by letter, so it is
// rejected with words.ErrEmptyPhrase.
func NewState(phrase words.Phrase) (State, error) {
	if !phrase.HasLetters() {
		return State{}, words.ErrEmptyPhrase
	}
	return State{
		Phrase:    phrase,
		Status:    Starting,
		Available: words.FullSet(),
	}, nil
}

// Begin moves a Starting round into Guessing. Any other status is returned unchanged.
func (s State) Begin() State {
	if s.Status == Starting {
		s.Status = Guessing
	}
	return s
}

// Apply scores t against the round and derives the next status.
//
// Letter guesses:
//   - The letter leaves Available whether right or wrong; repeating a letter
//     is harmless (sets do not double count).
//   - A hit joins Correct; the round is won once every distinct letter is in Correct.
//   - A miss joins WrongLetters and is checked against maxWrong.
//
// Phrase guesses:
//   - Matching spelling wins immediately.
//   - Otherwise the phrase joins WrongPhrases and is checked against maxWrong.
func (s State) Apply(t Turn, maxWrong int) (State, error) {
	if s.Status.IsOver() {
		return s, ErrGameOver
	}
	next := s.Begin()
	switch t.Kind {
	case GuessedLetter:
		if !t.Letter.Valid() {
			return s, fmt.Errorf("%w: %q", words.ErrInvalidLetter, t.Letter.String())
		}
		next.Available.Remove(t.Letter)
		if next.Phrase.Contains(t.Letter) {
			next.Correct.Add(t.Letter)
			if next.Phrase.AllLettersGuessed(next.Correct) {
				next.Status = GuessedAllLettersCorrectly
			} else {
				next.Status = Guessing
			}
			return next, nil
		}
		next.WrongLetters.Add(t.Letter)
	case GuessedPhrase:
		if t.Phrase.Raw() == next.Phrase.Raw() {
			next.Status = GuessedPhraseCorrectly
			return next, nil
		}
		next.WrongPhrases = addPhrase(next.WrongPhrases, t.Phrase)
	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownTurnType, t.Kind)
	}
	next.Status = next.wrongGuessResult(maxWrong)
	return next, nil
}

// wrongGuessResult ends the round once the wrong-guess budget is spent.
func (s State) wrongGuessResult(maxWrong int) Status {
	if s.WrongCount() >= maxWrong {
		return TooManyWrongGuesses
	}
	return Guessing
}

// WrongCount is the number of distinct wrong letters plus distinct wrong phrases.
func (s State) WrongCount() int {
	return s.WrongLetters.Len() + len(s.WrongPhrases)
}

// Remaining is how many more wrong guesses the round can absorb.
func (s State) Remaining(maxWrong int) int {
	if r := maxWrong - s.WrongCount(); r > 0 {
		return r
	}
	return 0
}

// Masked renders the phrase for display, hiding unguessed letters while the round is live.
func (s State) Masked(hidden string) string {
	return s.Phrase.Masked(s.Correct, s.Status, hidden)
}

// WrongPhraseStrings returns the spelled-out wrong phrases in guess order.
func (s State) WrongPhraseStrings() []string {
	out := make([]string, len(s.WrongPhrases))
	for i, p := range s.WrongPhrases {
		out[i] = p.Raw()
	}
	return out
}

// addPhrase appends p unless a phrase with the same spelling is present.
// The result never aliases the input slice.
func addPhrase(list []words.Phrase, p words.Phrase) []words.Phrase {
	for _, q := range list {
		if q.Equal(p) {
			return list
		}
	}
	out := make([]words.Phrase, len(list), len(list)+1)
	copy(out, list)
	return append(out, p)
}
